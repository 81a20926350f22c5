// ABOUTME: Response DTOs for settings and token endpoints
// ABOUTME: Shapes returned to API consumers; never carry a full credential

package responses

// SettingResponse is one normalized setting
type SettingResponse struct {
	UUID      string `json:"uuid"`
	Type      string `json:"type"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Encoded   bool   `json:"encoded"`
	Encrypted bool   `json:"encrypted"`
	Owner     int    `json:"owner"`
	Revision  int    `json:"revision"`
	Deleted   bool   `json:"deleted"`
	Created   string `json:"created,omitempty"`
	Modified  string `json:"modified,omitempty"`
}

// SettingsListResponse is the body of the list operation
type SettingsListResponse struct {
	Environment string            `json:"environment"`
	CompanyID   string            `json:"companyId"`
	Count       int               `json:"count"`
	Settings    []SettingResponse `json:"settings"`
}

// SettingValueResponse is a window over one setting's value
type SettingValueResponse struct {
	Key        string   `json:"key"`
	Type       string   `json:"type"`
	Encoded    bool     `json:"encoded"`
	Encrypted  bool     `json:"encrypted"`
	Lines      []string `json:"lines"`
	TotalLines int      `json:"totalLines"`
	HasMore    bool     `json:"hasMore"`
}

// SearchMatchResponse is one matching line
type SearchMatchResponse struct {
	LineNumber int    `json:"lineNumber"`
	Line       string `json:"line"`
	Context    string `json:"context"`
}

// SettingSearchResponse lists matches inside one setting's value
type SettingSearchResponse struct {
	Key          string                `json:"key"`
	Term         string                `json:"term"`
	TotalMatches int                   `json:"totalMatches"`
	Matches      []SearchMatchResponse `json:"matches"`
}

// TokenStatusResponse is the verdict for one environment
type TokenStatusResponse struct {
	Environment  string `json:"environment"`
	Valid        bool   `json:"valid"`
	StatusCode   int    `json:"statusCode,omitempty"`
	Message      string `json:"message,omitempty"`
	Note         string `json:"note,omitempty"`
	BaseURL      string `json:"baseUrl,omitempty"`
	TokenPreview string `json:"tokenPreview,omitempty"`
}

// TokenVerificationResponse is the body of the token verification operation
type TokenVerificationResponse struct {
	AllValid bool                  `json:"allValid"`
	Results  []TokenStatusResponse `json:"results"`
}

// HealthResponse reports liveness and which environments are configured
type HealthResponse struct {
	Status       string   `json:"status"`
	Environments []string `json:"environments"`
}
