// internal/component/game_state.go
package component

// Session — состояние, переживающее смену уровней в рамках одной партии.
type Session struct {
	Lives         int
	Score         int
	Level         int
	BonusesCaught int
}

// Reset возвращает сессию к началу партии.
func (s *Session) Reset(lives int) {
	s.Level = 1
	s.Score = 0
	s.Lives = lives
	s.BonusesCaught = 0
}
