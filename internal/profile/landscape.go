package profile

// Landscape is the 16:9 profile.
type Landscape struct{}

func init() {
	Register(&Landscape{})
}

func (p *Landscape) GetName() string {
	return "landscape"
}

func (p *Landscape) GetCanvas() (width, height int) {
	return 1920, 1080
}

func (p *Landscape) GetFrameRate() int {
	return 30
}
