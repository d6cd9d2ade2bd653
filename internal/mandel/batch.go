package mandel

import (
	"context"
	"sync"
)

// RenderBatch renders every view concurrently with r, one goroutine per view.
// Results are in the order of views. The first error (in view order) is
// returned and no frames are.
func RenderBatch(ctx context.Context, r *Renderer, views []ViewParameters) ([]*Framebuffer, error) {
	frames := make([]*Framebuffer, len(views))
	errs := make([]error, len(views))

	var wg sync.WaitGroup
	for i := range views {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			frames[idx], errs[idx] = r.Render(ctx, views[idx])
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return frames, nil
}
