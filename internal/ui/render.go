package ui

import (
	"fmt"
	"image/color"

	"github.com/louistrue/T-Display-S3-Long/internal/gfx"
	"github.com/louistrue/T-Display-S3-Long/internal/monitor"
)

var (
	colorBG       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorFG       = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorDim      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorHeaderBG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	colorSep      = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	colorAccent   = color.RGBA{R: 0x4c, G: 0xaf, B: 0xfa, A: 0xff}
	colorUp       = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	colorDown     = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	colorPending  = color.RGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff}
	colorArtBG    = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2a, A: 0xff}
	colorTrack    = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// Album art block of the now-playing screen. The tap-to-refresh zone
// reaches down to its bottom edge.
const (
	npArtTop    = 60
	npArtSize   = 140
	npArtBottom = npArtTop + npArtSize
)

func statusColor(st monitor.Status) color.RGBA {
	switch st {
	case monitor.StatusUp:
		return colorUp
	case monitor.StatusDown:
		return colorDown
	default:
		return colorPending
	}
}

// Render draws the active screen. It is a pure function of its inputs:
// identical (state, snapshot, nowMs) produce identical buffer contents.
func Render(c *gfx.Canvas, s *State, snap monitor.Snapshot, nowMs int64) {
	switch s.screen {
	case ScreenDetail:
		if s.detailIndex >= 0 && s.detailIndex < len(snap.Monitors) {
			renderDetail(c, s, snap.Monitors[s.detailIndex], nowMs)
			return
		}
		// Stale index is reconciled by SnapshotReplaced; if a frame
		// races it, fall back to the list rather than stale data.
		renderList(c, s, snap, nowMs)
	case ScreenNowPlaying:
		renderNowPlaying(c, s, snap.Track, nowMs)
	default:
		renderList(c, s, snap, nowMs)
	}
}

func renderList(c *gfx.Canvas, s *State, snap monitor.Snapshot, nowMs int64) {
	cfg := s.cfg
	c.Clear(colorBG)

	// Rows first; the header paints over anything scrolled underneath.
	if len(snap.Monitors) == 0 {
		c.DrawTextCentered(cfg.Height/2-16, "NO MONITORS", 2, colorDim)
		c.DrawTextCentered(cfg.Height/2+12, "TAP HEADER TO REFRESH", 1, colorDim)
	} else {
		nameField := cfg.Width - 38
		nameChars := nameField / gfx.CharAdvance(2)
		for i, m := range snap.Monitors {
			rowY := cfg.HeaderHeight + i*cfg.RowHeight - s.scroll
			if rowY+cfg.RowHeight <= cfg.HeaderHeight || rowY >= cfg.Height {
				continue
			}

			c.FillCircle(15, rowY+25, 7, statusColor(m.Status))
			name := marqueeText(m.Name, nameChars, nowMs, cfg.MarqueeStepMs)
			c.DrawText(30, rowY+17, name, 2, colorFG)

			line := fmt.Sprintf("%s %.2f%% %dms", m.Status, m.UptimePct, m.PingMs)
			c.DrawText(30, rowY+44, line, 1, colorDim)

			urlChars := (cfg.Width - 40) / gfx.CharAdvance(1)
			c.DrawText(30, rowY+58, clipText(m.URL, urlChars), 1, colorDim)

			c.HLine(10, rowY+cfg.RowHeight-1, cfg.Width-20, colorSep)
		}
		renderScrollbar(c, s, len(snap.Monitors))
	}

	// Header bar.
	c.FillRect(0, 0, cfg.Width, cfg.HeaderHeight, colorHeaderBG)
	c.DrawText(10, 12, "UPTIME", 2, colorFG)
	up := 0
	for _, m := range snap.Monitors {
		if m.Status == monitor.StatusUp {
			up++
		}
	}
	age := (nowMs - snap.TakenAtMs) / 1000
	if age < 0 {
		age = 0
	}
	c.DrawText(10, 38, fmt.Sprintf("%d/%d UP", up, len(snap.Monitors)), 1, colorDim)
	c.DrawText(10, 52, fmt.Sprintf("AGE %ds", age), 1, colorDim)
	c.HLine(0, cfg.HeaderHeight-1, cfg.Width, colorSep)
}

func renderScrollbar(c *gfx.Canvas, s *State, n int) {
	cfg := s.cfg
	content := n * cfg.RowHeight
	viewport := s.viewportHeight()
	if content <= viewport {
		return
	}

	thumbH := viewport * viewport / content
	if thumbH < 8 {
		thumbH = 8
	}
	maxScroll := s.maxScroll()
	thumbY := cfg.HeaderHeight
	if maxScroll > 0 {
		thumbY += s.scroll * (viewport - thumbH) / maxScroll
	}
	c.FillRoundRect(cfg.Width-4, thumbY, 3, thumbH, 1, colorDim)
}

func renderDetail(c *gfx.Canvas, s *State, m monitor.Monitor, nowMs int64) {
	cfg := s.cfg
	c.Clear(colorBG)

	nameChars := (cfg.Width - 20) / gfx.CharAdvance(2)
	c.DrawText(10, 20, marqueeText(m.Name, nameChars, nowMs, cfg.MarqueeStepMs), 2, colorFG)

	urlChars := (cfg.Width - 20) / gfx.CharAdvance(1)
	c.DrawText(10, 50, marqueeText(m.URL, urlChars, nowMs, cfg.MarqueeStepMs), 1, colorDim)
	c.HLine(0, 68, cfg.Width, colorSep)

	c.FillCircle(cfg.Width/2, 150, 34, statusColor(m.Status))
	c.DrawTextCentered(200, m.Status.String(), 4, statusColor(m.Status))

	c.DrawTextCentered(280, fmt.Sprintf("%.2f%%", m.UptimePct), 2, colorFG)
	c.DrawTextCentered(310, "UPTIME 24H", 1, colorDim)

	c.DrawTextCentered(360, fmt.Sprintf("%d ms", m.PingMs), 2, colorFG)
	c.DrawTextCentered(390, "AVG PING", 1, colorDim)

	c.DrawTextCentered(440, fmt.Sprintf("MONITOR #%d", m.ID), 1, colorDim)

	remain := (cfg.DetailTimeoutMs - (nowMs - s.detailEnteredAt) + 999) / 1000
	if remain < 0 {
		remain = 0
	}
	c.DrawTextCentered(cfg.Height-40, fmt.Sprintf("BACK IN %ds", remain), 1, colorDim)
	c.DrawTextCentered(cfg.Height-24, "TAP TO STAY", 1, colorSep)
}

func renderNowPlaying(c *gfx.Canvas, s *State, tr monitor.Track, nowMs int64) {
	cfg := s.cfg
	c.Clear(colorBG)

	c.DrawTextCentered(14, "NOW PLAYING", 1, colorDim)
	c.HLine(0, 32, cfg.Width, colorSep)

	if tr.Title == "" {
		c.DrawTextCentered(cfg.Height/2-8, "NOTHING PLAYING", 1, colorDim)
		return
	}

	// Album art placeholder: a vinyl disc in a sleeve.
	artCX := cfg.Width / 2
	artCY := npArtTop + npArtSize/2
	c.FillRoundRect(artCX-npArtSize/2, npArtTop, npArtSize, npArtSize, 12, colorArtBG)
	c.FillCircle(artCX, artCY, 48, colorTrack)
	c.FillCircle(artCX, artCY, 16, colorAccent)
	c.FillCircle(artCX, artCY, 5, colorBG)

	titleChars := (cfg.Width - 20) / gfx.CharAdvance(2)
	c.DrawText(10, 230, marqueeText(tr.Title, titleChars, nowMs, cfg.MarqueeStepMs), 2, colorFG)

	artistChars := (cfg.Width - 20) / gfx.CharAdvance(1)
	c.DrawText(10, 258, marqueeText(tr.Artist, artistChars, nowMs, cfg.MarqueeStepMs), 1, colorDim)

	pos := tr.PositionMs
	if tr.Playing {
		pos += nowMs - tr.FetchedAtMs
	}
	if pos < 0 {
		pos = 0
	}
	if tr.DurationMs > 0 && pos > tr.DurationMs {
		pos = tr.DurationMs
	}

	c.FillRoundRect(15, 290, cfg.Width-30, 8, 3, colorTrack)
	if tr.DurationMs > 0 {
		fill := int(int64(cfg.Width-30) * pos / tr.DurationMs)
		c.FillRoundRect(15, 290, fill, 8, 3, colorAccent)
	}
	c.DrawTextCentered(310, fmtClock(pos)+" / "+fmtClock(tr.DurationMs), 1, colorDim)

	if tr.Playing {
		c.DrawTextCentered(340, "PLAYING", 1, colorUp)
	} else {
		c.DrawTextCentered(340, "PAUSED", 1, colorPending)
	}

	c.DrawTextCentered(cfg.Height-24, "SWIPE DOWN FOR MONITORS", 1, colorSep)
}

// marqueeText rotates s one character per marquee step once it exceeds
// maxChars, with a short blank gap between repetitions. ASCII only.
func marqueeText(s string, maxChars int, nowMs, stepMs int64) string {
	if maxChars <= 0 || len(s) <= maxChars {
		return s
	}
	if stepMs <= 0 {
		return s[:maxChars]
	}
	padded := s + "   "
	off := int((nowMs / stepMs) % int64(len(padded)))
	rotated := padded[off:] + padded[:off]
	return rotated[:maxChars]
}

// clipText hard-truncates without animation; for secondary fields.
func clipText(s string, maxChars int) string {
	if maxChars <= 0 || len(s) <= maxChars {
		return s
	}
	return s[:maxChars]
}

func fmtClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	sec := ms / 1000
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
