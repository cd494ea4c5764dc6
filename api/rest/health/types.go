package health

// Response is the payload served at the health route.
type Response struct {
	Health string `json:"health"`
}
