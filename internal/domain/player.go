package domain

// Energy bounds for every player
const (
	EnergyMax = 100
	EnergyMin = 0
)

// Player represents an account's progression state.
// The repository is the system of record; services hold a transient copy
// for the duration of a single operation.
type Player struct {
	ID                   string `json:"player_id" db:"player_id"`
	Name                 string `json:"name" db:"player_name"`
	BasePower            int    `json:"base_power" db:"base_power"`
	Energy               int    `json:"energy" db:"energy"`
	Experience           int    `json:"experience" db:"experience"`
	Level                int    `json:"level" db:"level"`
	Gold                 int    `json:"gold" db:"gold"`
	LegendaryPity        int    `json:"legendary_pity" db:"legendary_pity"`
	TrainingsToday       int    `json:"trainings_today" db:"trainings_today"`
	LastResetDate        string `json:"last_reset_date" db:"last_reset_date"`
	LastMissionClaimDate string `json:"last_mission_claim_date" db:"last_mission_claim_date"`
	Items                []Item `json:"items"`
}

// EffectivePower is base power plus the power of every equipped item.
// Always recomputed, never stored.
func (p *Player) EffectivePower() int {
	total := p.BasePower
	for _, item := range p.Items {
		if item.Equipped {
			total += item.Power
		}
	}
	return total
}

// ItemByID returns the owned item with the given id, or nil
func (p *Player) ItemByID(itemID string) *Item {
	for i := range p.Items {
		if p.Items[i].ID == itemID {
			return &p.Items[i]
		}
	}
	return nil
}

// ClampEnergy forces energy back into the [EnergyMin, EnergyMax] range
func (p *Player) ClampEnergy() {
	if p.Energy > EnergyMax {
		p.Energy = EnergyMax
	}
	if p.Energy < EnergyMin {
		p.Energy = EnergyMin
	}
}

// RankingEntry is one row of the derived-strength leaderboard
type RankingEntry struct {
	PlayerID       string `json:"player_id"`
	Name           string `json:"name"`
	EffectivePower int    `json:"effective_power"`
}
