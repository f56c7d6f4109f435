package dto

// CycleQueryDTO 定时任务触发参数，day 为空时取当天
type CycleQueryDTO struct {
	Day string `form:"day" binding:"omitempty,datetime=2006-01-02"`
}

// ResetResultDTO 重置结果
type ResetResultDTO struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Day          string `json:"day"`
	DeletedCount int64  `json:"deleted_count"`
}

// AnnounceResultDTO 公布结果
type AnnounceResultDTO struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	Day         string       `json:"day"`
	WinningMood *MoodDTO     `json:"winning_mood"`
	VoteCount   int64        `json:"vote_count"`
	TotalVotes  int64        `json:"total_votes"`
	Results     []*MoodCount `json:"results"`
	Notified    bool         `json:"notified"`
}

type MoodDTO struct {
	Mood  string `json:"mood"`
	Emoji string `json:"emoji"`
	Link  string `json:"link,omitempty"`
}

// MoodCount 单个选项统计
type MoodCount struct {
	Index    int    `json:"index"`
	Mood     string `json:"mood"`
	Emoji    string `json:"emoji"`
	Count    int64  `json:"count"`
	Percent  int    `json:"percent"`
	IsWinner bool   `json:"is_winner"`
}

// DaySummaryDTO 管理后台当天概览
type DaySummaryDTO struct {
	Day         string       `json:"day"`
	Results     []*MoodCount `json:"results"`
	TotalVotes  int64        `json:"total_votes"`
	WinningMood *MoodDTO     `json:"winning_mood"`
	RecentVotes []*VoteDTO   `json:"recent_votes"`
}

// DailyMoodDTO 历史归档
type DailyMoodDTO struct {
	Day          string  `json:"day"`
	WinningIndex int     `json:"winning_index"`
	WinningMood  string  `json:"winning_mood"`
	WinningCount int64   `json:"winning_count"`
	TotalVotes   int64   `json:"total_votes"`
	Tally        []int64 `json:"tally"`
	AnnouncedAt  string  `json:"announced_at"`
}
