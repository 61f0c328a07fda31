package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/internal/utils"
	"github.com/MKhiriev/museum-user-api/models"
)

// collectionOps binds the three collection operations of one kind so the
// favourites and history routes share their handlers.
type collectionOps struct {
	kind   models.CollectionKind
	get    func(ctx context.Context, userID string) (models.Collection, error)
	add    func(ctx context.Context, userID, itemID string) (models.Collection, error)
	remove func(ctx context.Context, userID, itemID string) (models.Collection, error)
}

func (h *Handler) favourites() collectionOps {
	svc := h.services.CollectionService
	return collectionOps{
		kind:   models.Favourites,
		get:    svc.GetFavourites,
		add:    svc.AddFavourite,
		remove: svc.RemoveFavourite,
	}
}

func (h *Handler) history() collectionOps {
	svc := h.services.CollectionService
	return collectionOps{
		kind:   models.History,
		get:    svc.GetHistory,
		add:    svc.AddHistory,
		remove: svc.RemoveHistory,
	}
}

func (h *Handler) getCollection(ops collectionOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok {
			writeUnauthorized(w, r, ErrNoIdentityInContext)
			return
		}

		items, err := ops.get(r.Context(), identity.UserID)
		if err != nil {
			writeErrorRejection(w, r, "get_"+ops.kind.String(), err)
			return
		}

		utils.WriteJSON(w, items, http.StatusOK)
	}
}

func (h *Handler) addToCollection(ops collectionOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok {
			writeUnauthorized(w, r, ErrNoIdentityInContext)
			return
		}
		itemID := chi.URLParam(r, "id")

		items, err := ops.add(r.Context(), identity.UserID, itemID)
		if err != nil {
			writeErrorRejection(w, r, "add_"+ops.kind.String(), err)
			return
		}

		logger.FromRequest(r).Debug().Str("kind", ops.kind.String()).Str("item_id", itemID).Msg("item added")
		utils.WriteJSON(w, items, http.StatusOK)
	}
}

func (h *Handler) removeFromCollection(ops collectionOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok {
			writeUnauthorized(w, r, ErrNoIdentityInContext)
			return
		}
		itemID := chi.URLParam(r, "id")

		items, err := ops.remove(r.Context(), identity.UserID, itemID)
		if err != nil {
			writeErrorRejection(w, r, "remove_"+ops.kind.String(), err)
			return
		}

		utils.WriteJSON(w, items, http.StatusOK)
	}
}
