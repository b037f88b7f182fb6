package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/weatherpets/constant"
)

func beep44() beep.SampleRate {
	return beep.SampleRate(constant.RadioSampleRate)
}

func pull(s beep.Streamer, n int) [][2]float64 {
	buf := make([][2]float64, n)
	filled := 0
	for filled < n {
		m, ok := s.Stream(buf[filled:])
		filled += m
		if !ok {
			break
		}
	}
	return buf
}
