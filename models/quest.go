package models

// Quest is a quest the user has accepted, as listed on the profile screen.
type Quest struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	QuestType    string  `json:"quest_type"`
	RewardStars  int     `json:"reward_stars"`
	DistrictName *string `json:"district_name"`
	UserStatus   *string `json:"user_status"`
	Progress     int     `json:"progress"`
	TotalSteps   int     `json:"total_steps"`
	CompletedAt  *string `json:"completed_at"`
	IsRelevant   bool    `json:"is_relevant"`
}

func (q Quest) EntityID() int64 { return q.ID }

// AvailableQuest is a quest offered on the home screen.
type AvailableQuest struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	ShortDescription string  `json:"short_description"`
	QuestType        string  `json:"quest_type"`
	RewardStars      int     `json:"reward_stars"`
	DistrictName     *string `json:"district_name"`
	Status           string  `json:"status"`
	IsAccepted       bool    `json:"is_accepted"`
	UserStatus       *string `json:"user_status"`
}

func (q AvailableQuest) EntityID() int64 { return q.ID }

// QuestPreview is the detail card shown before a quest is accepted.
type QuestPreview struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	QuestType    string     `json:"quest_type"`
	Status       string     `json:"status"`
	EndDate      *string    `json:"end_date"`
	IsAccepted   bool       `json:"is_accepted"`
	UserStatus   *string    `json:"user_status"`
	RewardStars  int        `json:"reward_stars"`
	RewardCat    *CatReward `json:"reward_cat"`
	DistrictName *string    `json:"district_name"`
	StepsCount   int        `json:"steps_count"`
}

// CatReward describes a collectible granted for a quest.
type CatReward struct {
	ID           *int64  `json:"id,omitempty"`
	Name         *string `json:"name,omitempty"`
	Rarity       *string `json:"rarity,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	Compensation *int    `json:"compensation,omitempty"`
	Message      *string `json:"message,omitempty"`
}

// QuestStep is the current task of an accepted quest.
type QuestStep struct {
	StepID          int64  `json:"step_id"`
	StepNumber      int    `json:"step_number"`
	TaskDescription string `json:"task_description"`
	TaskType        string `json:"task_type"`
	Points          int    `json:"points"`
	CurrentProgress int    `json:"current_progress"`
	UserStatus      string `json:"user_status"`
}

// SubmitResult is returned after a step answer was accepted by the server.
type SubmitResult struct {
	IsFinalStep bool        `json:"is_final_step"`
	Reward      *StepReward `json:"reward"`
}

// StepReward is granted when the final step of a quest is submitted.
type StepReward struct {
	StarsEarned int        `json:"stars_earned"`
	CatReward   *CatReward `json:"cat_reward"`
	QuestType   string     `json:"quest_type"`
}
