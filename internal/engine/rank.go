package engine

type Rank string

const (
	RankE             Rank = "E"
	RankD             Rank = "D"
	RankC             Rank = "C"
	RankB             Rank = "B"
	RankA             Rank = "A"
	RankS             Rank = "S"
	RankShadowMonarch Rank = "SHADOW_MONARCH"
)

// Ranks in ascending order with their total-XP requirements.
var Ranks = []Rank{RankE, RankD, RankC, RankB, RankA, RankS, RankShadowMonarch}

var RankRequirements = map[Rank]int{
	RankE:             0,
	RankD:             100,
	RankC:             300,
	RankB:             600,
	RankA:             1000,
	RankS:             1500,
	RankShadowMonarch: 2500,
}

var rankNames = map[Rank]string{
	RankE:             "Beginner",
	RankD:             "Novice",
	RankC:             "Competent",
	RankB:             "Experienced",
	RankA:             "Elite",
	RankS:             "Legendary",
	RankShadowMonarch: "Shadow Monarch",
}

func (r Rank) DisplayName() string {
	if n, ok := rankNames[r]; ok {
		return n
	}
	return string(r)
}

// RankForXP returns the highest rank whose requirement is within totalXP.
func RankForXP(totalXP int) Rank {
	for i := len(Ranks) - 1; i >= 0; i-- {
		if totalXP >= RankRequirements[Ranks[i]] {
			return Ranks[i]
		}
	}
	return RankE
}

// NextRank returns the rank above r, or false when r is the top rank.
func NextRank(r Rank) (Rank, bool) {
	for i, rank := range Ranks {
		if rank == r && i+1 < len(Ranks) {
			return Ranks[i+1], true
		}
	}
	return r, false
}
