package domain

// TeamSlot is one of the six team positions on a player. An empty
// SpeciesKey is a valid, unfilled slot.
type TeamSlot struct {
	SpeciesKey string `json:"speciesKey"`
	IsShadow   bool   `json:"isShadow"`
}

// Player is the canonical per-entrant record. Team always holds exactly
// six slots once the record has passed validation.
type Player struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Flags []string   `json:"flags"` // 1-2 ISO-3166-1 alpha-2 codes, may be empty
	Team  []TeamSlot `json:"team"`
}

// ImportRecord is the unvalidated intermediate produced by an importer
// before being merged into Player entities.
type ImportRecord struct {
	Name  string     `json:"name"`
	Flags []string   `json:"flags"`
	Team  []TeamSlot `json:"team"`
}

// UsageStat is one row of the per-tournament usage ranking. Recomputed
// from the full player set on demand, never stored.
type UsageStat struct {
	SpeciesKey  string `json:"speciesKey"`
	Count       int    `json:"count"`
	ShadowCount int    `json:"shadowCount"`
}

type WrapperMode string

const (
	WrapperPairedLines  WrapperMode = "paired-lines"
	WrapperBracketLabel WrapperMode = "bracket-label-wrapper"
	WrapperHidden       WrapperMode = "hidden"
)

// ColumnWrapperConfig is a presentation instruction for one physical
// column region. The pipeline carries it through unchanged.
type ColumnWrapperConfig struct {
	Mode      WrapperMode `json:"mode"`
	LabelText string      `json:"labelText"`
}

type BracketSlot string

const (
	SlotChampion  BracketSlot = "champion"
	SlotRunnerUp  BracketSlot = "runnerUp"
	SlotThird     BracketSlot = "third"
	SlotFourth    BracketSlot = "fourth"
	SlotTopEight1 BracketSlot = "topEight1"
	SlotTopEight2 BracketSlot = "topEight2"
	SlotTopEight3 BracketSlot = "topEight3"
	SlotTopEight4 BracketSlot = "topEight4"
)

// BracketSlots lists every named slot in display order.
var BracketSlots = []BracketSlot{
	SlotChampion,
	SlotRunnerUp,
	SlotThird,
	SlotFourth,
	SlotTopEight1,
	SlotTopEight2,
	SlotTopEight3,
	SlotTopEight4,
}

// ResolvedBracketPositions maps every named slot to a display name, or
// nil when the slot is unmapped or references a missing player.
type ResolvedBracketPositions map[BracketSlot]*string

// BracketMatch is one best-effort reconstructed bracket pairing.
// Inferred marks pairings fabricated from placements rather than known
// from match data.
type BracketMatch struct {
	Round    string `json:"round"`
	PlayerA  string `json:"playerA"` // player id
	PlayerB  string `json:"playerB"` // player id
	Inferred bool   `json:"inferred"`
}

// Tournament is the canonical record: the player map plus the ordered
// id list that encodes column placement, with ancillary config.
type Tournament struct {
	EventName string
	Size      int
	Players   map[string]*Player
	Order     []string
	Bracket   map[BracketSlot]string // slot -> player id, sparse
	Wrappers  []ColumnWrapperConfig
}
