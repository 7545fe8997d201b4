package remote

type EmptyResponse struct {
}

type DrawBitmapRequest struct {
	X     int
	Y     int
	// Image is PNG encoded.
	Image []byte
}
