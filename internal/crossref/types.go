package crossref

// worksResponse is the top-level envelope of /works list queries.
type worksResponse struct {
	Status  string `json:"status"`
	Message struct {
		Items []Work `json:"items"`
	} `json:"message"`
}

// workResponse is the envelope of single-work lookups.
type workResponse struct {
	Status  string `json:"status"`
	Message Work   `json:"message"`
}

// Work is the subset of a Crossref work record consumed here.
type Work struct {
	DOI                 string       `json:"DOI"`
	Type                string       `json:"type"`
	Title               []string     `json:"title"`
	ContainerTitle      []string     `json:"container-title"`
	ShortContainerTitle []string     `json:"short-container-title"`
	Author              []WorkAuthor `json:"author"`
	Issued              WorkDate     `json:"issued"`
	Volume              string       `json:"volume"`
	Issue               string       `json:"issue"`
	Page                string       `json:"page"`
	Publisher           string       `json:"publisher"`
	ISBN                []string     `json:"ISBN"`
	URL                 string       `json:"URL"`
	Abstract            string       `json:"abstract"`
}

// WorkAuthor is one contributor; organizations carry Name instead of
// Family/Given.
type WorkAuthor struct {
	Family string `json:"family"`
	Given  string `json:"given"`
	Name   string `json:"name"`
}

// WorkDate is Crossref's date-parts encoding: [[year, month, day]]
// with month and day optional.
type WorkDate struct {
	DateParts [][]int `json:"date-parts"`
}
