package navigate_session

// NavigateRequest HTTP request model. Action is "next" or "back".
type NavigateRequest struct {
	Action string `json:"action"`
}
