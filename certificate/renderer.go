package certificate

import (
	"context"
	"fmt"
	"time"

	"github.com/harshu1705/NSSS-Certificate/core"
	"github.com/harshu1705/NSSS-Certificate/models"
)

// Renderer is the two-stage pipeline: load the template, then compose.
// Every failure comes back wrapped in core.ErrRenderFailure.
type Renderer struct {
	loader   *TemplateLoader
	composer *Composer
	timeout  time.Duration // bounds the template load, 0 = none
}

func NewRenderer(loader *TemplateLoader, composer *Composer, timeout time.Duration) *Renderer {
	return &Renderer{loader: loader, composer: composer, timeout: timeout}
}

// Render produces the certificate for an already accepted submission.
func (r *Renderer) Render(ctx context.Context, name, event string) (*models.Artifact, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	tpl, err := r.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrRenderFailure, err)
	}

	data, layout, err := r.composer.Compose(tpl, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrRenderFailure, err)
	}

	return &models.Artifact{
		FileName:    core.ArtifactFileName(name),
		DisplayName: name,
		Event:       event,
		Layout:      layout,
		Data:        data,
	}, nil
}
