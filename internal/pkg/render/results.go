package render

import (
	"image"
	"strconv"

	"github.com/disintegration/imaging"
)

// Bar 结果图中的一行
type Bar struct {
	Label   string
	Count   int64
	Percent int
	Winner  bool
}

const (
	resultsTop = 80
	labelWidth = 160
	barLeft    = margin + labelWidth
	barMaxW    = Width - barLeft - margin - 80
	maxRowH    = 60
)

// ResultsCard 绘制某天的统计柱状图
func ResultsCard(title string, bars []Bar) image.Image {
	canvas := imaging.New(Width, Height, background)

	heading := scaled(drawText(printable(title), foreground), 2)
	canvas = imaging.Overlay(canvas, heading, image.Pt((Width-heading.Bounds().Dx())/2, margin), 1.0)

	for i, bar := range bars {
		track := barRect(i, len(bars), 100)
		canvas = imaging.Paste(canvas, imaging.New(track.Dx(), track.Dy(), trackColor), track.Min)

		if fill := barRect(i, len(bars), bar.Percent); fill.Dx() > 0 {
			c := barColor
			if bar.Winner {
				c = winnerColor
			}
			canvas = imaging.Paste(canvas, imaging.New(fill.Dx(), fill.Dy(), c), fill.Min)
		}

		textY := track.Min.Y + (track.Dy()-face.Height)/2
		label := drawText(printable(bar.Label), foreground)
		canvas = imaging.Overlay(canvas, label, image.Pt(margin, textY), 1.0)

		count := drawText(strconv.FormatInt(bar.Count, 10)+" ("+strconv.Itoa(bar.Percent)+"%)", foreground)
		canvas = imaging.Overlay(canvas, count, image.Pt(track.Max.X+8, textY), 1.0)
	}
	return canvas
}

// barRect 第 i 行柱子按百分比的区域
func barRect(i, n, percent int) image.Rectangle {
	rowH := maxRowH
	if n > 0 {
		rowH = min(maxRowH, (Height-resultsTop-margin)/n)
	}
	barH := max(rowH*2/3, 1)
	percent = min(max(percent, 0), 100)

	y := resultsTop + i*rowH
	return image.Rect(barLeft, y, barLeft+barMaxW*percent/100, y+barH)
}
