package scene

// NewGameDirector returns a director running a fresh game of env.GameID.
func NewGameDirector(env *Env) (*Director, error) {
	dir := NewDirector()
	seed := env.Runtime.Seed
	if seed == 0 {
		seed = env.nextSeed()
	}
	main, err := NewMainScene(dir, env, seed)
	if err != nil {
		return nil, err
	}
	dir.RunWithScene(main)
	return dir, nil
}

// NewMenuDirector returns a director showing the title menu.
func NewMenuDirector(env *Env) *Director {
	dir := NewDirector()
	dir.RunWithScene(NewMenuScene(dir, env))
	return dir
}

// Resize records a new screen size. Scenes created afterwards use it; the
// running one keeps its playfield.
func (e *Env) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	e.Runtime.ScreenW = w
	e.Runtime.ScreenH = h
}
