package response

// DetailResponse is the body of every endpoint: {"detail": ...}. Detail
// is a message string, a remote errors list or a list of field errors.
type DetailResponse struct {
	Detail interface{} `json:"detail"`
}
