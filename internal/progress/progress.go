package progress

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Indicator provides progress tracking for a solve run: Loading the
// problem, Searching the state space, then a final Found/Failed summary.
type Indicator struct {
	enabled bool
	mu      sync.Mutex
	phase   string
	step    string
	start   time.Time
}

// NewIndicator creates a new progress indicator.
func NewIndicator(enabled bool) *Indicator {
	return &Indicator{
		enabled: enabled,
		start:   time.Now(),
	}
}

// Phase sets the current phase.
func (p *Indicator) Phase(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.phase = name
	fmt.Printf("\n%s\n", name)
}

// Step sets the current step within a phase.
func (p *Indicator) Step(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.step = name
	fmt.Printf("  +- %s\n", name)
}

// SubStep shows a sub-step.
func (p *Indicator) SubStep(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  |  +- %s\n", name)
}

// Success marks a step as successful.
func (p *Indicator) Success(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  `- [ok] %s\n", name)
}

// Error shows an error.
func (p *Indicator) Error(name string, err error) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  `- [fail] %s: %v\n", name, err)
}

// Info shows an informational message.
func (p *Indicator) Info(msg string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  |  %s\n", msg)
}

// Stats reports the running node counts during a search, e.g. after every
// N frontier pops.
func (p *Indicator) Stats(nodesGenerated, uniqueAdmitted int) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  |  generated %s, admitted %s\n",
		formatNumber(nodesGenerated), formatNumber(uniqueAdmitted))
}

// Elapsed returns time since start.
func (p *Indicator) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Summary prints the final Found/Failed summary.
func (p *Indicator) Summary(success bool, details string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	symbol := "Found"
	if !success {
		symbol = "Failed"
	}

	elapsed := time.Since(p.start)
	fmt.Printf("\n%s in %s\n", symbol, formatDuration(elapsed))
	if details != "" {
		fmt.Printf("  %s\n", details)
	}
}

func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var parts []string
	for i := len(s); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{s[start:i]}, parts...)
	}
	return strings.Join(parts, ",")
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
