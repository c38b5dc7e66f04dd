package blobs

// Hooks receives session events. Nil fields are skipped.
type Hooks struct {
	Merge    func(from, to Tier)
	Split    func(parent Tier)
	Pop      func()
	GameOver func(score int)
	Reset    func()
}

func (h Hooks) merge(from, to Tier) {
	if h.Merge != nil {
		h.Merge(from, to)
	}
}

func (h Hooks) split(parent Tier) {
	if h.Split != nil {
		h.Split(parent)
	}
}

func (h Hooks) pop() {
	if h.Pop != nil {
		h.Pop()
	}
}

func (h Hooks) gameOver(score int) {
	if h.GameOver != nil {
		h.GameOver(score)
	}
}

func (h Hooks) reset() {
	if h.Reset != nil {
		h.Reset()
	}
}
