package model

// Tally 每个选项的票数，下标即选项下标
type Tally []int64

// Total 总票数
func (t Tally) Total() int64 {
	var sum int64
	for _, n := range t {
		sum += n
	}
	return sum
}

// NoWinner 无人投票时的 WinningIndex
const NoWinner = -1

// AnnounceResult 某天的统计结果
type AnnounceResult struct {
	Day           string `json:"day"`
	Tally         Tally  `json:"tally"`
	WinningIndex  int    `json:"winning_index"`
	WinningOption *Mood  `json:"winning_mood"`
	WinningCount  int64  `json:"winning_count"`
	TotalVotes    int64  `json:"total_votes"`
}

// HasWinner 当天是否有投票
func (r *AnnounceResult) HasWinner() bool {
	return r.WinningIndex != NoWinner && r.WinningOption != nil
}
