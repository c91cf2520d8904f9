package entity

// Renderer draws game entities for one frame.
// Clear starts a frame and Present finishes it.
type Renderer interface {
	RenderBall(ball *Ball)
	RenderTarget(target *Target)
	Clear()
	Present()
}
