package core

import "log"

// LogScoreboard reports score changes to the log instead of a screen.
type LogScoreboard struct {
	Count      string
	WinVisible bool
}

func (l *LogScoreboard) SetCountText(text string) {
	if text == l.Count {
		return
	}
	l.Count = text
	log.Printf("[headless] %s", text)
}

func (l *LogScoreboard) SetWinVisible(visible bool) {
	if visible && !l.WinVisible {
		log.Println("[headless] win display shown")
	}
	l.WinVisible = visible
}
