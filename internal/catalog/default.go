package catalog

// Default returns the built-in demo study used when no catalog file is given.
func Default() *Catalog {
	c, err := New(defaultPatient, defaultSeries)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultPatient = Patient{Name: "Adrian Lunea", ID: "MR-8492-X", BirthDate: "14 Nov 1982"}

var defaultSeries = []Series{
	{
		ID:         1,
		Name:       "Localizer",
		FrameCount: 1,
		Frames:     []string{"https://images.pexels.com/photos/4226256/pexels-photo-4226256.jpeg"},
		Metadata: Metadata{
			Modality:    "MR",
			Description: "Scout view / Localizer",
			Notes:       "No significant abnormalities detected in this series.",
		},
	},
	{
		ID:         2,
		Name:       "T2 Sagittal Spine",
		FrameCount: 12,
		Frames:     []string{"https://images.unsplash.com/photo-1579154204601-01588f351e67"},
		Metadata: Metadata{
			Modality:    "MR",
			Description: "Multi-level degenerative changes.",
			Notes:       "Degenerative changes observed in **L4-L5** vertebrae.",
		},
	},
	{
		ID:         3,
		Name:       "Brain Axial T2",
		FrameCount: 24,
		Frames:     []string{"https://images.pexels.com/photos/7089020/pexels-photo-7089020.jpeg"},
		Metadata: Metadata{
			Modality:    "MR",
			Description: "Normal brain appearance.",
			Notes:       "Brain structures appear normal. No mass effect.",
		},
	},
	{
		ID:         4,
		Name:       "Knee Coronal PD",
		FrameCount: 15,
		Frames:     []string{"https://images.pexels.com/photos/7298497/pexels-photo-7298497.jpeg"},
		Metadata: Metadata{
			Modality:    "MR",
			Description: "ACL intact. Mild effusion.",
			Notes:       "No significant abnormalities detected in this series.",
		},
	},
}
