package effect

// MeshScale returns the scale of the unit image plane so that an image of
// aspect texW/texH covers a viewport of viewW x viewH.
func MeshScale(texW, texH, viewW, viewH float64) [3]float64 {
	aspectTexture := texW / texH
	aspectViewport := viewW / viewH
	if aspectViewport > aspectTexture {
		return [3]float64{viewW, viewW / aspectTexture, 1}
	}
	return [3]float64{viewH * aspectTexture, viewH, 1}
}
