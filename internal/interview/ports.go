package interview

// InputPort supplies the next raw user utterance. Blocking; any timeout
// behavior belongs to the adapter, not the engine.
type InputPort interface {
	ReadLine(prompt string) (string, error)
}

// OutputPort displays text to the candidate. Fire-and-forget.
type OutputPort interface {
	Display(text string)
}
