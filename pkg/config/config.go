package config

import "time"

// Window and board dimensions. The board is derived from the client area
// divided by the cell size and never changes while the program runs.
const (
	CellSize     = 20 // Pixels per cell in the desktop window
	WindowWidth  = 640
	WindowHeight = 480
	Width        = WindowWidth / CellSize  // 32 cells
	Height       = WindowHeight / CellSize // 24 cells
)

// Gameplay settings
const (
	InitialSnakeLength = 3
	TickInterval       = 200 * time.Millisecond // One snake step per tick
)

// Recorder settings
const (
	RecordDir        = "records"
	RecordBufferSize = 1000 // Steps buffered before the recorder starts dropping
)

// Web host settings
const (
	WebAddr      = ":8080"
	WebStaticDir = "web/static"
)

// Emoji characters for terminal rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🔴"
	CharCrash = "💥"
	CharEdge  = "⬜"
)
