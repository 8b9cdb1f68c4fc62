package game

import "time"

const dateLayout = "2006-01-02"

// Outcome tags carried in the Result envelope
const (
	OutcomeCritical       = "critical"
	OutcomeNormal         = "normal"
	OutcomeTooTired       = "too_tired"
	OutcomeClaimed        = "claimed"
	OutcomeAlreadyClaimed = "already_claimed"
	OutcomeNotReady       = "not_ready"
	OutcomeVictory        = "victory"
	OutcomeDefeat         = "defeat"
)

// Training
const (
	TrainEnergyCost     = 10
	TrainExperienceGain = 10
	TrainCriticalChance = 0.80 // roll strictly above this is a critical
	TrainCriticalGain   = 3
	TrainNormalGain     = 1
)

// Starter account defaults
const (
	StarterBasePower = 10
	StarterGold      = 50
)

// Chest rarity selection. Above PityThreshold the legendary chance grows
// quadratically with the overflow, capped at PityMaxExtraChance. The rare
// band is checked against the same roll, so it shrinks as the bonus grows.
const (
	BaseLegendaryChance = 0.10
	RareChance          = 0.40
	PityThreshold       = 50
	PityStepChance      = 0.05
	PityMaxExtraChance  = 0.6
)

// Daily mission
const (
	MissionTrainingsRequired = 5
	MissionReward            = 75
)

// League match
const (
	LeagueEnergyCost  = 20
	LeagueVictoryGold = 50
	LeagueVictoryXP   = 25
	LeagueDefeatGold  = 10
	LeagueDefeatXP    = 10
	LeagueRivalSpread = 11 // rival = effective - 5 + [0,11)
	LeagueRivalOffset = -5
)

// Dungeon raid
const (
	DungeonEnergyCost  = 50
	DungeonVictoryGold = 120
	DungeonVictoryXP   = 60
	DungeonDefeatXP    = 15
	DungeonBossSpread  = 26 // boss = effective - 5 + [0,26)
	DungeonBossOffset  = -5
)

// Bot seeding
const (
	BotCount         = 5
	BotBasePower     = 8 // plus 3 per index
	BotPowerPerIndex = 3
	BotGold          = 20
)

const rankingCacheTTL = 15 * time.Second
