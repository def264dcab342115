package crud

// Admin-managed tables served under /api/admin
var (
	News = Resource{
		Table:          "news",
		Fields:         []string{"title", "excerpt", "body", "date", "image_url", "published"},
		BoolFields:     []string{"published"},
		TouchUpdatedAt: true,
	}

	Publications = Resource{
		Table:          "publications",
		Fields:         []string{"title", "journal", "year", "keywords", "authors", "doi"},
		JSONFields:     []string{"keywords", "authors"},
		TouchUpdatedAt: true,
	}

	// Lectures leaves updated_at to the column default on insert
	Lectures = Resource{
		Table:  "lectures",
		Fields: []string{"title", "description", "type", "mode", "date", "time", "location", "instructor", "pdf_path", "video_url"},
	}

	Graduates = Resource{
		Table:          "graduates",
		Fields:         []string{"name", "cohort", "specialty", "email", "thesis", "current_position", "avatar_url"},
		TouchUpdatedAt: true,
	}
)

// AdminResources lists the tables mounted by the admin router, in order
func AdminResources() []Resource {
	return []Resource{News, Publications, Lectures, Graduates}
}
