package bus

// Kind identifies an event type. The set of kinds is closed: every event the
// game publishes is declared in this file.
type Kind uint8

const (
	KindCountdownShow Kind = iota + 1
	KindCountdownTick
	KindCountdownHide
	KindSetCenterIcon
	KindShowPercents
	KindUpdateScoreboard
	KindShowInsufficientGold
	KindHideInsufficientGold
	KindBalanceUpdated
	KindMatchFinished
	KindAdStarted
	KindAdFinished
)

var kindNames = map[Kind]string{
	KindCountdownShow:        "CountdownShow",
	KindCountdownTick:        "CountdownTick",
	KindCountdownHide:        "CountdownHide",
	KindSetCenterIcon:        "SetCenterIcon",
	KindShowPercents:         "ShowPercents",
	KindUpdateScoreboard:     "UpdateScoreboard",
	KindShowInsufficientGold: "ShowInsufficientGold",
	KindHideInsufficientGold: "HideInsufficientGold",
	KindBalanceUpdated:       "BalanceUpdated",
	KindMatchFinished:        "MatchFinished",
	KindAdStarted:            "AdStarted",
	KindAdFinished:           "AdFinished",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Event is implemented only by the event types of this package.
type Event interface {
	Kind() Kind
	sealed()
}

// CountdownShow asks for a timer display showing Seconds.
type CountdownShow struct{ Seconds int }

// CountdownTick updates the timer display to Value.
type CountdownTick struct{ Value int }

type CountdownHide struct{}

// SetCenterIcon (re)displays the target pose. Pose is empty when no pose
// library is configured.
type SetCenterIcon struct{ Pose string }

// ShowPercents carries both players' similarity percentages.
type ShowPercents struct{ P1, P2 int }

// UpdateScoreboard carries the win totals of the running match.
type UpdateScoreboard struct{ A, B int }

type ShowInsufficientGold struct{}

type HideInsufficientGold struct{}

type BalanceUpdated struct{ Balance int }

// MatchFinished is published when a player reaches the target score.
// Winner is 1 or 2.
type MatchFinished struct {
	Winner int
	A, B   int
}

type AdStarted struct {
	Placement string
	Rewarded  bool
}

type AdFinished struct {
	Placement string
	Rewarded  bool
}

func (CountdownShow) Kind() Kind        { return KindCountdownShow }
func (CountdownTick) Kind() Kind        { return KindCountdownTick }
func (CountdownHide) Kind() Kind        { return KindCountdownHide }
func (SetCenterIcon) Kind() Kind        { return KindSetCenterIcon }
func (ShowPercents) Kind() Kind         { return KindShowPercents }
func (UpdateScoreboard) Kind() Kind     { return KindUpdateScoreboard }
func (ShowInsufficientGold) Kind() Kind { return KindShowInsufficientGold }
func (HideInsufficientGold) Kind() Kind { return KindHideInsufficientGold }
func (BalanceUpdated) Kind() Kind       { return KindBalanceUpdated }
func (MatchFinished) Kind() Kind        { return KindMatchFinished }
func (AdStarted) Kind() Kind            { return KindAdStarted }
func (AdFinished) Kind() Kind           { return KindAdFinished }

func (CountdownShow) sealed()        {}
func (CountdownTick) sealed()        {}
func (CountdownHide) sealed()        {}
func (SetCenterIcon) sealed()        {}
func (ShowPercents) sealed()         {}
func (UpdateScoreboard) sealed()     {}
func (ShowInsufficientGold) sealed() {}
func (HideInsufficientGold) sealed() {}
func (BalanceUpdated) sealed()       {}
func (MatchFinished) sealed()        {}
func (AdStarted) sealed()            {}
func (AdFinished) sealed()           {}
