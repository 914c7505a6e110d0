package utils

import (
	"chaipoint-service/internal/pkg/constvars"
	"fmt"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return fmt.Sprintf("%s%s", constvars.REQUEST_ID_PREFIX, uuid.New().String())
}

func GenerateImageObjectName(menuItemID, extension string) string {
	return fmt.Sprintf("menu/%s/%s%s", menuItemID, uuid.New().String(), extension)
}
