package dto

import "dbprobe/internal/core/domain"

// Status labels and the success message shown to HTTP clients.
const (
	StatusSuccess    = "성공"
	StatusFailure    = "실패"
	MessageConnected = "DB에 연결되었습니다!"
)

// ProbeResponse is the success body of GET /. Data is always present and is
// null when the query returned no row.
type ProbeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ProbeFailureResponse is the failure body of GET /. It has no data key.
type ProbeFailureResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FromResult maps a probe outcome onto the HTTP body.
func FromResult(r domain.ProbeResult) any {
	if !r.OK() {
		return ProbeFailureResponse{
			Status:  StatusFailure,
			Message: r.Message,
		}
	}
	return ProbeResponse{
		Status:  StatusSuccess,
		Message: MessageConnected,
		Data:    r.Data,
	}
}
