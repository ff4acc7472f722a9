package api

// LogIncrement is the response of the incremental log fetch
type LogIncrement struct {
	NewContent string `json:"new_content"`
	NewPos     int64  `json:"new_pos"`
}

// LogPage is one window of the backward history query
type LogPage struct {
	Content    string `json:"content"`
	HasMore    bool   `json:"has_more"`
	NextOffset int    `json:"next_offset"`
	NewPos     int64  `json:"new_pos"`
}

// Task is a scheduled keyword search configured on the monitor
type Task struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"task_name"`
	Enabled              bool    `json:"enabled"`
	Keyword              string  `json:"keyword"`
	Description          string  `json:"description"`
	MaxPages             int     `json:"max_pages"`
	PersonalOnly         bool    `json:"personal_only"`
	MinPrice             *string `json:"min_price"`
	MaxPrice             *string `json:"max_price"`
	Cron                 *string `json:"cron"`
	AIPromptBaseFile     string  `json:"ai_prompt_base_file"`
	AIPromptCriteriaFile string  `json:"ai_prompt_criteria_file"`
	AccountStateFile     *string `json:"account_state_file"`
	Running              bool    `json:"is_running"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type errorBody struct {
	Detail string `json:"detail"`
}
