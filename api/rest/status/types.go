package status

// Response is the payload served at the root route.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
