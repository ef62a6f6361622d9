package profile

// Portrait is the 9:16 vertical profile used for shorts and reels.
type Portrait struct{}

func init() {
	Register(&Portrait{})
}

func (p *Portrait) GetName() string {
	return "portrait"
}

func (p *Portrait) GetCanvas() (width, height int) {
	return 1080, 1920
}

func (p *Portrait) GetFrameRate() int {
	return 30
}
