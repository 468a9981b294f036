package app

// Key binding constants used in handleKey.
const (
	KeyQuit            = "q"
	KeyQuitUpper       = "Q"
	KeyCtrlC           = "ctrl+c"
	KeySpace           = " "
	KeyGenerate        = "g"
	KeyGenerateUpper   = "G"
	KeyEnter           = "enter"
	KeyCommentary      = "c"
	KeyCommentaryUpper = "C"
)
