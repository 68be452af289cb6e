package media

// Ref is a handle to an externally stored asset (Cloudinary). The backend never
// persists binaries itself, only these references.
type Ref struct {
	URL          string `json:"url"`
	PublicID     string `json:"publicId"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	Format       string `json:"format,omitempty"`
	ResourceType string `json:"resourceType,omitempty"`
}
