package utils

import (
	"chaipoint-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterStudentRequest(request *requests.RegisterStudent) {
	request.FullName = strings.TrimSpace(request.FullName)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.HostelBlock = strings.ToUpper(strings.TrimSpace(request.HostelBlock))
	request.RoomNumber = strings.ToUpper(strings.TrimSpace(request.RoomNumber))
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeCreateMenuItemRequest(request *requests.CreateMenuItem) {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	request.Category = strings.ToLower(strings.TrimSpace(request.Category))
}
