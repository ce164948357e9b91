package style

// Strategy is the heavy-tier rewrite step for one domain. It receives the
// medium-tier output and the domain's profile.
type Strategy interface {
	Rewrite(text string, p Profile) string
}

type StrategyFunc func(text string, p Profile) string

func (f StrategyFunc) Rewrite(text string, p Profile) string { return f(text, p) }

// Identity leaves text untouched. Every domain uses it unless a deeper
// rewrite is registered with WithStrategy.
var Identity Strategy = StrategyFunc(func(text string, _ Profile) string { return text })

type Advisor struct {
	profiles   map[Domain]Profile
	strategies map[Domain]Strategy
}

type Option func(*Advisor)

func WithStrategy(d Domain, s Strategy) Option {
	return func(a *Advisor) {
		if s != nil {
			a.strategies[d] = s
		}
	}
}

func WithProfile(p Profile) Option {
	return func(a *Advisor) {
		a.profiles[p.Domain] = p
	}
}

func NewAdvisor(opts ...Option) *Advisor {
	a := &Advisor{
		profiles:   make(map[Domain]Profile, len(defaultProfiles)),
		strategies: map[Domain]Strategy{},
	}
	for d, p := range defaultProfiles {
		a.profiles[d] = p
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Profile returns the style profile for d. General and unknown domains have none.
func (a *Advisor) Profile(d Domain) (Profile, bool) {
	p, ok := a.profiles[d]
	return p, ok
}

// Apply runs the domain's strategy over text. Without a profile the text is
// returned as is.
func (a *Advisor) Apply(d Domain, text string) string {
	p, ok := a.profiles[d]
	if !ok {
		return text
	}
	s, ok := a.strategies[d]
	if !ok {
		s = Identity
	}
	return s.Rewrite(text, p)
}
