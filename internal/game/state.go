package game

// State is the phase of the game lifecycle.
type State int

const (
	StateStart         State = iota // Title screen, waiting for a name
	StatePlaying                    // Active gameplay
	StatePaused                     // Playing with the simulation frozen
	StateLevelComplete              // Roster cleared, waiting to advance
	StateGameOver                   // Out of lives or breached
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelComplete:
		return "level-complete"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// Input is the player's intent sampled once per frame.
// Left and Right are held; Shoot and Pause are true only on the frame the
// key was pressed.
type Input struct {
	Left  bool
	Right bool
	Shoot bool
	Pause bool
}

// Snapshot is the externally visible game state handed to observers.
type Snapshot struct {
	State        State
	Score        int
	Lives        int
	Level        int
	PlayerName   string
	LastBonus    int // Bonus awarded by the most recent level completion
	EnemiesLeft  int
	MusicEnabled bool
}

// Observer is notified after every score, lives or level change and every
// state transition.
type Observer interface {
	GameChanged(s Snapshot)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s Snapshot)

// GameChanged calls f(s).
func (f ObserverFunc) GameChanged(s Snapshot) {
	f(s)
}

// Music controls the background track. Calls must not block.
type Music interface {
	Start()
	Stop()
}

type nopMusic struct{}

func (nopMusic) Start() {}
func (nopMusic) Stop()  {}

type nopObserver struct{}

func (nopObserver) GameChanged(Snapshot) {}
