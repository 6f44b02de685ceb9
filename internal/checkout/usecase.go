package checkout

import (
	"context"

	"github.com/fekuna/omnipos-grocery/internal/model"
)

type UseCase interface {
	// StartSession loads the catalog into a new session in the selecting state.
	StartSession(ctx context.Context) (*Session, error)
	// Finish closes the session and saves its catalog, even when the cart is
	// empty. The receipt is nil when nothing was bought.
	Finish(ctx context.Context, s *Session) (*model.Receipt, error)
}
