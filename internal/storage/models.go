package storage

import "time"

type Stats struct {
	Strength     int `json:"strength"`
	Vitality     int `json:"vitality"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Mana         int `json:"mana"`
}

type Hunter struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Age                    int       `json:"age"`
	Weight                 int       `json:"weight"`
	Level                  int       `json:"level"`
	XP                     int       `json:"xp"`
	XPToNextLevel          int       `json:"xpToNextLevel"`
	Rank                   string    `json:"rank"`
	CreatedAt              time.Time `json:"createdAt"`
	Stats                  Stats     `json:"stats"`
	CompletedDays          int       `json:"completedDays"`
	TotalMissionsCompleted int       `json:"totalMissionsCompleted"`
}

type Mission struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	XPReward    int    `json:"xpReward"`
	StatReward  string `json:"statReward"`
	Completed   bool   `json:"completed"`
	Icon        string `json:"icon"`
}

// DailyProgress is the live mission set for one calendar day. Date is a
// local YYYY-MM-DD key; a stored record with a different key is stale and
// gets superseded on the next load.
type DailyProgress struct {
	Date      string    `json:"date"`
	Missions  []Mission `json:"missions"`
	Completed bool      `json:"completed"`
	XPGained  int       `json:"xpGained"`
}

// Challenge is the continuous-streak challenge. The current streak is never
// stored; it is recomputed from StartTime while the challenge is active.
type Challenge struct {
	Active      bool      `json:"isActive"`
	StartTime   time.Time `json:"startTime"`
	BestStreak  int       `json:"bestStreak"`
	TotalResets int       `json:"totalResets"`
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type WeeklyReport struct {
	ID                    string    `json:"id"`
	Week                  string    `json:"week"`
	MissionCompletionRate int       `json:"missionCompletionRate"`
	ProductivityPeaks     []string  `json:"productivityPeaks"`
	Recommendations       []string  `json:"recommendations"`
	CreatedAt             time.Time `json:"createdAt"`
}

type HunterRoom struct {
	Strengths     []string       `json:"strengths"`
	Weaknesses    []string       `json:"weaknesses"`
	Goals         []Goal         `json:"goals"`
	WeeklyReports []WeeklyReport `json:"weeklyReports"`
}
