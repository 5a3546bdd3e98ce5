package services

type Template struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Theme struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Navigation struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Schema struct {
	Name string `json:"name"`
}

// NavigationRegion holds the form fields of a navigation region. References
// to templates and navigations are ids; nil means not chosen yet.
type NavigationRegion struct {
	Name               string `json:"name"`
	Sequence           *int   `json:"sequence"`
	RegionTemplate     *int   `json:"regionTemplate"`
	NavigationTemplate *int   `json:"navigationTemplate"`
	NavigationType     string `json:"navigationType"`
	Navigation         *int   `json:"navigation"`
	RepeatLastLevel    bool   `json:"repeatLastLevel"`
}

// NavigationRegionRequest is the save payload. Route identifiers that are not
// known (regionId on create) are sent as null.
type NavigationRegionRequest struct {
	PageID             *string `json:"pageId"`
	DisplayPoint       *string `json:"displayPoint"`
	RegionID           *string `json:"regionId"`
	Name               string  `json:"name"`
	Sequence           *int    `json:"sequence"`
	RegionTemplate     *int    `json:"regionTemplate"`
	NavigationTemplate *int    `json:"navigationTemplate"`
	NavigationType     string  `json:"navigationType"`
	Navigation         *int    `json:"navigation"`
	RepeatLastLevel    bool    `json:"repeatLastLevel"`
}
