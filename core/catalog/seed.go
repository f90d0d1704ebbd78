package catalog

// seedUniversities is the bundled partner-university list shown when the
// backend has nothing to offer (empty catalog or unreachable), so browsing
// keeps working for prospective students.
var seedUniversities = []University{
	{
		ID:          1,
		Name:        "Chuvash State Pedagogical University",
		Location:    "Cheboksary, Russia",
		Description: "A leading pedagogical university offering comprehensive programs...",
		Website:     "https://chgpu.edu.ru/",
		Established: "1930",
		Students:    "15000+",
		Rating:      4.5,
	},
	{
		ID:          2,
		Name:        "Samara National Research University",
		Location:    "Samara, Russia",
		Description: "A prestigious national research university known for aerospace...",
		Website:     "https://ssau.ru/",
		Established: "1918",
		Students:    "20000+",
		Rating:      4.7,
	},
	{
		ID:          3,
		Name:        "Yaroslavl State Technical University (YSTU)",
		Location:    "Yaroslavl, Russia",
		Description: "A technical university specializing in engineering, architecture...",
		Website:     "https://www.ystu.ru/",
		Established: "1944",
		Students:    "12000+",
		Rating:      4.3,
	},
	{
		ID:          4,
		Name:        "Chuvash State Agrarian University",
		Location:    "Cheboksary, Russia",
		Description: "Specialized university focusing on agricultural sciences...",
		Website:     "http://www.agro.chuvash.ru/",
		Established: "1931",
		Students:    "10000+",
		Rating:      4.2,
	},
	{
		ID:          5,
		Name:        "Lobachevsky State University of Nizhny Novgorod (UNN)",
		Location:    "Nizhny Novgorod, Russia",
		Description: "One of Russia's oldest and most prestigious universities...",
		Website:     "http://www.unn.ru/",
		Established: "1916",
		Students:    "40000+",
		Rating:      4.6,
	},
	{
		ID:          6,
		Name:        "Kazan Innovative University",
		Location:    "Kazan, Russia",
		Description: "A dynamic private university with strong programs in economics, law and IT...",
		Website:     "https://ieml.ru/",
		Established: "1994",
		Students:    "11000+",
		Rating:      4.4,
	},
}

// SeedUniversities returns a copy of the bundled list.
func SeedUniversities() []University {
	out := make([]University, len(seedUniversities))
	copy(out, seedUniversities)
	return out
}
