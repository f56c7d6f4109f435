package service

import (
	"VibeCheck/internal/model"
)

// Tally 统计 [0, catalogSize) 每个选项的票数，越界下标直接忽略
func Tally(votes []*model.Vote, catalogSize int) model.Tally {
	if catalogSize < 0 {
		catalogSize = 0
	}
	tally := make(model.Tally, catalogSize)
	for _, v := range votes {
		if v == nil || v.OptionIndex < 0 || v.OptionIndex >= catalogSize {
			continue
		}
		tally[v.OptionIndex]++
	}
	return tally
}

// Winner 取票数最多的选项，平票时下标小者胜；全为 0 时 ok 为 false
func Winner(tally model.Tally) (index int, ok bool) {
	index = model.NoWinner
	var best int64
	for i, n := range tally {
		if n > best {
			best = n
			index = i
		}
	}
	return index, index != model.NoWinner
}
