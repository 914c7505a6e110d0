package controllers

import (
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/exceptions"
	"net/http"
)

func sessionFromRequest(r *http.Request) (*models.Session, error) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	return session, nil
}
