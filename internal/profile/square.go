package profile

// Square is the 1:1 profile.
type Square struct{}

func init() {
	Register(&Square{})
}

func (p *Square) GetName() string {
	return "square"
}

func (p *Square) GetCanvas() (width, height int) {
	return 1080, 1080
}

func (p *Square) GetFrameRate() int {
	return 30
}
