package tui

import (
	"strings"
	"time"
)

// frameInterval paces the sun and rain animation on the empty screen.
const frameInterval = 400 * time.Millisecond

var sunFrames = [][]string{
	{`  \ | /  `, `-- (☀) --`, `  / | \  `},
	{`  . ' .  `, `'  (☀)  '`, `  ' . '  `},
}

var cloudArt = []string{
	`   .--.     `,
	` .(    ).   `,
	`(___.__)__) `,
}

const rainPattern = `'  '  '  '  '`

// weatherFrame renders frame i of the sun and rain-cloud panel as tview-tagged text.
// When leaving, the art is drawn muted while the screen hands over to the results.
func weatherFrame(i int, leaving bool) string {
	if i < 0 {
		i = -i
	}

	sunColor, cloudColor, rainColor := "yellow", "white", "dodgerblue"
	if leaving {
		sunColor, cloudColor, rainColor = "gray", "gray", "gray"
	}

	sun := sunFrames[i%len(sunFrames)]
	offset := i % 3

	var b strings.Builder
	for row := range cloudArt {
		b.WriteString("[" + sunColor + "]" + sun[row] + "[-]")
		b.WriteString("      ")
		b.WriteString("[" + cloudColor + "]" + cloudArt[row] + "[-]\n")
	}

	pad := strings.Repeat(" ", len(sun[0])+6)
	for row := 0; row < 2; row++ {
		shift := (offset + row) % 3
		drops := strings.Repeat(" ", shift) + rainPattern[:len(rainPattern)-shift]
		b.WriteString(pad + "[" + rainColor + "]" + drops + "[-]\n")
	}

	return b.String()
}

// startTicker calls step with an increasing frame number on the UI goroutine until
// the returned stop function is called.
func startTicker(queue func(func()), every time.Duration, step func(frame int)) (stop func()) {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-ticker.C:
				frame++
				f := frame
				queue(func() { step(f) })
			case <-done:
				return
			}
		}
	}()

	var stopped bool

	return func() {
		if !stopped {
			stopped = true
			close(done)
		}
	}
}
