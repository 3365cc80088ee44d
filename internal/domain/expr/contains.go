package expr

func (Rational) Contains(string) bool { return false }
func (PiConst) Contains(string) bool  { return false }
func (EConst) Contains(string) bool   { return false }
func (s Symbol) Contains(v string) bool { return s.Name == v }

func (s Sum) Contains(v string) bool { return anyContains(s.Terms, v) }
func (p Product) Contains(v string) bool { return anyContains(p.Factors, v) }
func (p Power) Contains(v string) bool { return p.Base.Contains(v) || p.Exp.Contains(v) }
func (l Log) Contains(v string) bool { return l.Arg.Contains(v) || l.baseOrE().Contains(v) }
func (t Trig) Contains(v string) bool { return t.Arg.Contains(v) }
func (a ArcTrig) Contains(v string) bool { return a.Arg.Contains(v) }

func anyContains(es []Expr, v string) bool {
	for _, e := range es {
		if e.Contains(v) {
			return true
		}
	}
	return false
}

// Children returns the immediate sub-expressions of e, for tree
// traversal by the integration engine.

func (Rational) Children() []Expr { return nil }
func (PiConst) Children() []Expr  { return nil }
func (EConst) Children() []Expr   { return nil }
func (Symbol) Children() []Expr   { return nil }
func (s Sum) Children() []Expr     { return append([]Expr(nil), s.Terms...) }
func (p Product) Children() []Expr { return append([]Expr(nil), p.Factors...) }
func (p Power) Children() []Expr   { return []Expr{p.Base, p.Exp} }
func (l Log) Children() []Expr     { return []Expr{l.Arg, l.baseOrE()} }
func (t Trig) Children() []Expr    { return []Expr{t.Arg} }
func (a ArcTrig) Children() []Expr { return []Expr{a.Arg} }

// Symbols returns the distinct variable names in e, in first-seen order.
func symbolsOf(e Expr) []string {
	seen := map[string]bool{}
	var order []string
	var walk func(Expr)
	walk = func(e Expr) {
		if s, ok := e.(Symbol); ok {
			if !seen[s.Name] {
				seen[s.Name] = true
				order = append(order, s.Name)
			}
			return
		}
		for _, c := range e.Children() {
			walk(c)
		}
	}
	walk(e)
	return order
}

func (r Rational) Symbols() []string { return symbolsOf(r) }
func (p PiConst) Symbols() []string  { return symbolsOf(p) }
func (e EConst) Symbols() []string   { return symbolsOf(e) }
func (s Symbol) Symbols() []string   { return symbolsOf(s) }
func (s Sum) Symbols() []string      { return symbolsOf(s) }
func (p Product) Symbols() []string  { return symbolsOf(p) }
func (p Power) Symbols() []string    { return symbolsOf(p) }
func (l Log) Symbols() []string      { return symbolsOf(l) }
func (t Trig) Symbols() []string     { return symbolsOf(t) }
func (a ArcTrig) Symbols() []string  { return symbolsOf(a) }
