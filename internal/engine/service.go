package engine

import (
	"database/sql"
	"time"

	"github.com/hiagosil/sistemalevelup/internal/storage"
)

type Service struct {
	db         *sql.DB
	hunters    *storage.HunterRepo
	daily      *storage.DailyRepo
	challenges *storage.ChallengeRepo
	notes      *storage.NotesRepo
	rooms      *storage.RoomRepo

	clock  IdentityClock
	notify Notifier
}

func NewService(db *sql.DB) *Service {
	return NewServiceWith(db, SystemClock(), NopNotifier())
}

func NewServiceWith(db *sql.DB, clock IdentityClock, notifier Notifier) *Service {
	kv := storage.NewKV(db)
	return &Service{
		db:         db,
		hunters:    storage.NewHunterRepo(kv),
		daily:      storage.NewDailyRepo(kv),
		challenges: storage.NewChallengeRepo(kv),
		notes:      storage.NewNotesRepo(kv),
		rooms:      storage.NewRoomRepo(kv),
		clock:      clock,
		notify:     notifier,
	}
}

func (s *Service) HunterRepo() *storage.HunterRepo       { return s.hunters }
func (s *Service) DailyRepo() *storage.DailyRepo         { return s.daily }
func (s *Service) ChallengeRepo() *storage.ChallengeRepo { return s.challenges }
func (s *Service) NotesRepo() *storage.NotesRepo         { return s.notes }
func (s *Service) RoomRepo() *storage.RoomRepo           { return s.rooms }

func (s *Service) Clock() IdentityClock { return s.clock }

// DateKey is the unambiguous calendar-day key used for daily rollover,
// computed in device-local time.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey is the date key of the most recent Sunday, used to deduplicate
// weekly reports.
func WeekKey(t time.Time) string {
	return DateKey(t.AddDate(0, 0, -int(t.Weekday())))
}
