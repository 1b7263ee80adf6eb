package sink

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"notifier/internal/tracking"
)

var (
	sinks = map[string]tracking.Observer{
		"noop":    Noop{},
		"console": NewConsole(os.Stdout),
		"log":     NewLog(zerolog.New(os.Stderr).With().Timestamp().Logger()),
		"metrics": Metrics{},
	}
	mutex sync.RWMutex
)

// Get returns a registered sink by name.
// Pre-registered sinks: "noop", "console" (stdout), "log" (JSON to stderr) and
// "metrics".
func Get(name string) (tracking.Observer, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	obs, exists := sinks[name]
	if !exists {
		return nil, fmt.Errorf("unknown sink: %s", name)
	}
	return obs, nil
}

// Register adds or replaces a named sink.
func Register(name string, observer tracking.Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	sinks[name] = observer
}

// Names returns the registered sink names in sorted order.
func Names() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	names := lo.Keys(sinks)
	sort.Strings(names)
	return names
}

// Build resolves names into one observer. Several names produce a Multi in
// the given order; none produces Noop.
func Build(names ...string) (tracking.Observer, error) {
	names = lo.Uniq(lo.Compact(names))
	if len(names) == 0 {
		return Noop{}, nil
	}
	observers := make([]tracking.Observer, 0, len(names))
	for _, n := range names {
		obs, err := Get(n)
		if err != nil {
			return nil, err
		}
		observers = append(observers, obs)
	}
	if len(observers) == 1 {
		return observers[0], nil
	}
	return NewMulti(observers...), nil
}
