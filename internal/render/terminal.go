package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/nota/internal/engine"
	"git.lost.host/meutraa/nota/internal/game"
	"git.lost.host/meutraa/nota/internal/score"
	"git.lost.host/meutraa/nota/internal/theme"
	"golang.org/x/term"
)

const (
	// FeedbackLength is how long hit and miss text stays up
	FeedbackLength = 1500 * time.Millisecond

	laneSpacing = 3
	topRow      = 4
	barRow      = 5 // Rows between the hit line and the bottom
	applauseBar = 40
)

type decoration struct {
	Row, Col int
	Content  string
	Frames   int // remaining frames until removed
}

// Terminal draws the game with ANSI escapes on a terminal.
type Terminal struct {
	Theme       theme.Theme
	Field       engine.Field
	Lanes       []string
	FramePeriod time.Duration
	Out         io.Writer
	Length      float64 // Song length in seconds, shown when known

	buffer       strings.Builder
	restoreState *term.State
	width        int
	height       int
	columns      map[string]int
	decorations  []*decoration

	verdict        *game.Verdict
	feedback       string
	feedbackFrames int
	snapshot       score.Snapshot
	chord          string
	held           map[string]bool
	banner         string
	passed         int
}

func NewTerminal(lanes []string, field engine.Field, framePeriod time.Duration) *Terminal {
	t := &Terminal{
		Theme:       &theme.DefaultTheme{},
		Field:       field,
		Lanes:       lanes,
		FramePeriod: framePeriod,
		Out:         os.Stdout,
		held:        map[string]bool{},
	}
	t.Resize(80, 24)
	return t
}

// Init takes over the terminal. With raw set it also puts it in raw
// mode, for when nothing else reading the keyboard does.
func (t *Terminal) Init(raw bool) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	t.Resize(width, height)

	if raw {
		state, err := term.MakeRaw(fd)
		if nil != err {
			return err
		}
		t.restoreState = state
	}

	fmt.Fprintf(t.Out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (t *Terminal) Deinit() error {
	fmt.Fprintf(t.Out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == t.restoreState {
		return nil
	}
	return term.Restore(int(os.Stdout.Fd()), t.restoreState)
}

func (t *Terminal) Resize(width, height int) {
	t.width, t.height = width, height
	left := (width - len(t.Lanes)*laneSpacing) / 2
	if left < 2 {
		left = 2
	}
	t.columns = make(map[string]int, len(t.Lanes))
	for i, lane := range t.Lanes {
		t.columns[lane] = left + i*laneSpacing + 1
	}
}

func (t *Terminal) hitRow() int {
	return t.height - barRow
}

// row is the terminal row of field height y.
func (t *Terminal) row(y float64) int {
	perUnit := float64(t.hitRow()-topRow) / t.Field.SpawnHeight
	return t.hitRow() - int(math.Round(y*perUnit))
}

func (t *Terminal) frames(d time.Duration) int {
	if t.FramePeriod <= 0 {
		return 1
	}
	return int(d / t.FramePeriod)
}

func (t *Terminal) AddDecoration(row, col int, content string, frames int) {
	t.decorations = append(t.decorations, &decoration{
		Row:     row,
		Col:     col,
		Content: content,
		Frames:  frames,
	})
}

func (t *Terminal) tickDecorations() {
	nd := make([]*decoration, 0, len(t.decorations))
	for _, d := range t.decorations {
		if d.Frames == 0 {
			continue
		}
		t.Fill(d.Row, d.Col, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	t.decorations = nd
}

// Draw renders one frame of the field and its surroundings.
func (t *Terminal) Draw(live []*engine.Note, pos float64, paused bool) {
	for row := 1; row <= t.height; row++ {
		t.Fill(row, 1, "\033[2K")
	}
	hit := t.hitRow()

	t.Fill(1, 2, fmt.Sprintf("Applause %v", bar(t.snapshot.Applause, applauseBar)))
	status := fmt.Sprintf("%7.2fs", pos)
	if t.Length > 0 {
		status += fmt.Sprintf(" / %.2fs", t.Length)
	}
	if paused {
		status += "  paused"
	}
	t.Fill(2, 2, status)

	for _, lane := range t.Lanes {
		t.Fill(hit, t.columns[lane], t.Theme.RenderHitField(lane, t.held[lane]))
	}

	for _, n := range live {
		col, ok := t.columns[n.Lane]
		if !ok || n.State() == engine.Gone {
			continue
		}
		judged := n.State() == engine.Retiring
		top, bottom := t.row(n.Top()), t.row(n.Y())
		if judged {
			length := int(math.Ceil(float64(bottom-top) * n.Scale(pos)))
			top = bottom - length
		}
		if top < topRow {
			top = topRow
		}
		if bottom > hit {
			bottom = hit
		}
		sym := t.Theme.RenderNote(n.Name(), judged)
		for row := top; row <= bottom; row++ {
			t.Fill(row, col, sym)
		}
	}
	t.tickDecorations()

	if t.feedbackFrames > 0 {
		t.feedbackFrames--
		t.Fill(hit+1, 2, t.feedback)
	}
	t.Fill(hit+2, 2, fmt.Sprintf("Score: %v  Accuracy: %5.1f%%  Streak: %v  Passed: %v",
		t.snapshot.Score, t.snapshot.Accuracy, t.snapshot.ConsecutiveHits, t.passed))
	t.Fill(hit+3, 2, t.chord)
	if t.banner != "" {
		t.Fill(t.height/2, (t.width-len(t.banner))/2, t.banner)
	}
	t.flush()
}

// bar draws fill, from 0 to 1, as width cells.
func bar(fill float64, width int) string {
	n := int(math.Round(fill * float64(width)))
	if n < 0 {
		n = 0
	} else if n > width {
		n = width
	}
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", width-n) + "]"
}

func (t *Terminal) NoteChanged(n *engine.Note) {
	if n.State() == engine.Gone && n.Missed() {
		t.passed++
	}
}

func (t *Terminal) Judged(lane string, v game.Verdict) {
	t.verdict = &v
	t.held[lane] = true
	if !v.Hit {
		if col, ok := t.columns[lane]; ok {
			t.AddDecoration(t.hitRow()-1, col, "\033[1;31m╳\033[0m", t.frames(FeedbackLength/3))
		}
	}
}

func (t *Terminal) Released(lane string) {
	delete(t.held, lane)
}

func (t *Terminal) ScoreChanged(s score.Snapshot) {
	t.snapshot = s
	if nil == t.verdict {
		return
	}
	if t.verdict.Hit {
		t.feedback = fmt.Sprintf("\033[1;32mHit! x%v\033[0m", s.ConsecutiveHits)
	} else {
		t.feedback = "\033[1;31mMiss!\033[0m"
	}
	t.feedbackFrames = t.frames(FeedbackLength)
	t.verdict = nil
}

func (t *Terminal) ChordChanged(text string) {
	t.chord = text
}

func (t *Terminal) Finished(o score.Outcome, accuracy float64) {
	if o == score.Success {
		t.banner = fmt.Sprintf("Success! %.1f%%  (enter to play again, esc to quit)", accuracy)
	} else {
		t.banner = fmt.Sprintf("Game over %.1f%%  (enter to play again, esc to quit)", accuracy)
	}
}

// Reset clears everything a finished run left on screen.
func (t *Terminal) Reset() {
	t.banner = ""
	t.feedback = ""
	t.feedbackFrames = 0
	t.passed = 0
	t.verdict = nil
	t.decorations = nil
	t.held = map[string]bool{}
}

func (t *Terminal) Fill(row, column int, message string) {
	t.buffer.WriteString("\033[")
	t.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	t.buffer.WriteString(";")
	t.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	t.buffer.WriteString("H")
	t.buffer.WriteString(message)
}

func (t *Terminal) flush() {
	io.WriteString(t.Out, t.buffer.String())
	t.buffer.Reset()
}
