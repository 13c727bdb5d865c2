package datastructure

// chicagoCampuses is the static campus reference list for the Chicago metro area.
// It ships with the binary: campuses are search anchors, not user data, and the
// upstream list changes only with a release.
var chicagoCampuses = []Campus{
	{
		ID:         "depaul-loop",
		Name:       "DePaul (Loop)",
		University: "DePaul University",
		Lat:        41.8858,
		Lng:        -87.6278,
		Address:    "1 E Jackson Blvd, Chicago",
	},
	{
		ID:         "depaul-lincoln-park",
		Name:       "DePaul (Lincoln Park)",
		University: "DePaul University",
		Lat:        41.9253,
		Lng:        -87.6541,
		Address:    "2400 N Sheffield Ave, Chicago",
	},
	{
		ID:         "uic",
		Name:       "UIC",
		University: "University of Illinois Chicago",
		Lat:        41.8708,
		Lng:        -87.6505,
		Address:    "601 S Morgan St, Chicago",
	},
	{
		ID:         "loyola",
		Name:       "Loyola University",
		University: "Loyola University Chicago",
		Lat:        41.9994,
		Lng:        -87.6586,
		Address:    "1032 W Sheridan Rd, Chicago",
	},
	{
		ID:         "northwestern",
		Name:       "Northwestern (Chicago)",
		University: "Northwestern University",
		Lat:        41.8962,
		Lng:        -87.6189,
		Address:    "420 E Superior St, Chicago",
	},
	{
		ID:         "columbia-college",
		Name:       "Columbia College Chicago",
		University: "Columbia College Chicago",
		Lat:        41.8726,
		Lng:        -87.6243,
		Address:    "600 S Michigan Ave, Chicago",
	},
	{
		ID:         "iit",
		Name:       "Illinois Tech",
		University: "Illinois Institute of Technology",
		Lat:        41.8354,
		Lng:        -87.6277,
		Address:    "3300 S Federal St, Chicago",
	},
	{
		ID:         "roosevelt",
		Name:       "Roosevelt University",
		University: "Roosevelt University",
		Lat:        41.8769,
		Lng:        -87.6253,
		Address:    "430 S Michigan Ave, Chicago",
	},
	{
		ID:         "saic",
		Name:       "SAIC",
		University: "School of the Art Institute of Chicago",
		Lat:        41.8796,
		Lng:        -87.6237,
		Address:    "36 S Wabash Ave, Chicago",
	},
	{
		ID:         "neiu",
		Name:       "Northeastern Illinois",
		University: "Northeastern Illinois University",
		Lat:        41.9799,
		Lng:        -87.7184,
		Address:    "5500 N St Louis Ave, Chicago",
	},
	{
		ID:         "chicago-state",
		Name:       "Chicago State University",
		University: "Chicago State University",
		Lat:        41.7196,
		Lng:        -87.6076,
		Address:    "9501 S King Dr, Chicago",
	},
	{
		ID:         "harold-washington",
		Name:       "Harold Washington College",
		University: "Harold Washington College",
		Lat:        41.8861,
		Lng:        -87.6268,
		Address:    "30 E Lake St, Chicago",
	},
	{
		ID:         "uic-west",
		Name:       "UIC (West Campus)",
		University: "University of Illinois Chicago",
		Lat:        41.8719,
		Lng:        -87.6733,
		Address:    "2242 W Harrison St, Chicago",
	},
	{
		ID:         "uchicago",
		Name:       "University of Chicago",
		University: "University of Chicago",
		Lat:        41.7886,
		Lng:        -87.5987,
		Address:    "5801 S Ellis Ave, Chicago",
		Aliases:    []string{"uchicago", "u of c"},
	},
	{
		ID:         "ccc-harold-washington",
		Name:       "Harold Washington College",
		University: "City Colleges of Chicago",
		Lat:        41.8861,
		Lng:        -87.6268,
		Address:    "30 E Lake St, Chicago",
	},
	{
		ID:         "ccc-daley",
		Name:       "Richard J. Daley College",
		University: "City Colleges of Chicago",
		Lat:        41.7554,
		Lng:        -87.7237,
		Address:    "7500 S Pulaski Rd, Chicago",
	},
	{
		ID:         "ccc-kennedy-king",
		Name:       "Kennedy-King College",
		University: "City Colleges of Chicago",
		Lat:        41.7785,
		Lng:        -87.6441,
		Address:    "6301 S Halsted St, Chicago",
	},
	{
		ID:         "ccc-malcolm-x",
		Name:       "Malcolm X College",
		University: "City Colleges of Chicago",
		Lat:        41.8785,
		Lng:        -87.6742,
		Address:    "1900 W Van Buren St, Chicago",
	},
	{
		ID:         "ccc-olive-harvey",
		Name:       "Olive-Harvey College",
		University: "City Colleges of Chicago",
		Lat:        41.7093,
		Lng:        -87.5844,
		Address:    "10001 S Woodlawn Ave, Chicago",
	},
	{
		ID:         "ccc-truman",
		Name:       "Truman College",
		University: "City Colleges of Chicago",
		Lat:        41.9646,
		Lng:        -87.6595,
		Address:    "1145 W Wilson Ave, Chicago",
	},
	{
		ID:         "ccc-wilbur-wright",
		Name:       "Wilbur Wright College",
		University: "City Colleges of Chicago",
		Lat:        41.9596,
		Lng:        -87.7874,
		Address:    "4300 N Narragansett Ave, Chicago",
	},
	{
		ID:         "northwestern-evanston",
		Name:       "Northwestern (Evanston)",
		University: "Northwestern University",
		Lat:        42.0565,
		Lng:        -87.6753,
		Address:    "633 Clark St, Evanston",
	},
	{
		ID:         "north-park",
		Name:       "North Park University",
		University: "North Park University",
		Lat:        41.9814,
		Lng:        -87.7107,
		Address:    "3225 W Foster Ave, Chicago",
	},
	{
		ID:         "concordia",
		Name:       "Concordia University Chicago",
		University: "Concordia University Chicago",
		Lat:        41.8343,
		Lng:        -87.9370,
		Address:    "7400 Augusta St, River Forest",
	},
	{
		ID:         "dominican",
		Name:       "Dominican University",
		University: "Dominican University",
		Lat:        41.8355,
		Lng:        -87.9318,
		Address:    "7900 W Division St, River Forest",
	},
	{
		ID:         "elmhurst",
		Name:       "Elmhurst University",
		University: "Elmhurst University",
		Lat:        41.8994,
		Lng:        -87.9431,
		Address:    "190 S Prospect Ave, Elmhurst",
	},
	{
		ID:         "wheaton",
		Name:       "Wheaton College",
		University: "Wheaton College",
		Lat:        41.8661,
		Lng:        -88.1017,
		Address:    "501 College Ave, Wheaton",
	},
	{
		ID:         "north-central",
		Name:       "North Central College",
		University: "North Central College",
		Lat:        41.7856,
		Lng:        -88.1482,
		Address:    "30 N Brainard St, Naperville",
	},
	{
		ID:         "benedictine",
		Name:       "Benedictine University",
		University: "Benedictine University",
		Lat:        41.7810,
		Lng:        -88.1354,
		Address:    "5700 College Rd, Lisle",
	},
	{
		ID:         "aurora",
		Name:       "Aurora University",
		University: "Aurora University",
		Lat:        41.7606,
		Lng:        -88.3201,
		Address:    "347 S Gladstone Ave, Aurora",
	},
	{
		ID:         "governors-state",
		Name:       "Governors State University",
		University: "Governors State University",
		Lat:        41.4440,
		Lng:        -87.7354,
		Address:    "1 University Pkwy, University Park",
	},
	{
		ID:         "purdue-northwest-hammond",
		Name:       "Purdue Northwest (Hammond)",
		University: "Purdue University Northwest",
		Lat:        41.5878,
		Lng:        -87.4953,
		Address:    "2200 169th St, Hammond IN",
	},
	{
		ID:         "purdue-northwest-westville",
		Name:       "Purdue Northwest (Westville)",
		University: "Purdue University Northwest",
		Lat:        41.5492,
		Lng:        -86.9083,
		Address:    "1401 S US-421, Westville IN",
	},
	{
		ID:         "valparaiso",
		Name:       "Valparaiso University",
		University: "Valparaiso University",
		Lat:        41.4964,
		Lng:        -87.0611,
		Address:    "1700 Chapel Dr, Valparaiso IN",
	},
	{
		ID:         "iu-northwest",
		Name:       "IU Northwest",
		University: "Indiana University Northwest",
		Lat:        41.5781,
		Lng:        -87.4725,
		Address:    "3400 Broadway, Gary IN",
	},
	{
		ID:         "college-lake-county",
		Name:       "College of Lake County",
		University: "College of Lake County",
		Lat:        42.2799,
		Lng:        -87.9578,
		Address:    "19351 W Washington St, Grayslake",
	},
	{
		ID:         "lake-forest",
		Name:       "Lake Forest College",
		University: "Lake Forest College",
		Lat:        42.2225,
		Lng:        -87.8414,
		Address:    "555 N Sheridan Rd, Lake Forest",
	},
	{
		ID:         "rosalind-franklin",
		Name:       "Rosalind Franklin University",
		University: "Rosalind Franklin University",
		Lat:        42.3018,
		Lng:        -87.8612,
		Address:    "3333 Green Bay Rd, North Chicago",
	},
	{
		ID:         "trinity-international",
		Name:       "Trinity International University",
		University: "Trinity International University",
		Lat:        42.2736,
		Lng:        -87.8372,
		Address:    "2065 Half Day Rd, Deerfield",
	},
	{
		ID:         "judson",
		Name:       "Judson University",
		University: "Judson University",
		Lat:        42.0450,
		Lng:        -88.3126,
		Address:    "1151 N State St, Elgin",
	},
	{
		ID:         "waubonsee",
		Name:       "Waubonsee Community College",
		University: "Waubonsee Community College",
		Lat:        41.7823,
		Lng:        -88.3307,
		Address:    "Route 47 at Waubonsee Dr, Sugar Grove",
	},
	{
		ID:         "college-dupage",
		Name:       "College of DuPage",
		University: "College of DuPage",
		Lat:        41.8523,
		Lng:        -88.0870,
		Address:    "425 Fawell Blvd, Glen Ellyn",
	},
	{
		ID:         "moraine-valley",
		Name:       "Moraine Valley Community College",
		University: "Moraine Valley Community College",
		Lat:        41.7218,
		Lng:        -87.8469,
		Address:    "9000 W College Pkwy, Palos Hills",
	},
	{
		ID:         "south-suburban",
		Name:       "South Suburban College",
		University: "South Suburban College",
		Lat:        41.5760,
		Lng:        -87.6087,
		Address:    "15800 S State St, South Holland",
	},
	{
		ID:         "prairie-state",
		Name:       "Prairie State College",
		University: "Prairie State College",
		Lat:        41.4823,
		Lng:        -87.6354,
		Address:    "202 S Halsted St, Chicago Heights",
	},
	{
		ID:         "thornton",
		Name:       "Thornton Community College",
		University: "South Suburban College",
		Lat:        41.5651,
		Lng:        -87.6087,
		Address:    "15800 S State St, South Holland",
	},
	{
		ID:         "harper",
		Name:       "Harper College",
		University: "Harper College",
		Lat:        42.0637,
		Lng:        -88.0417,
		Address:    "1200 W Algonquin Rd, Palatine",
	},
	{
		ID:         "elgin-community",
		Name:       "Elgin Community College",
		University: "Elgin Community College",
		Lat:        42.0354,
		Lng:        -88.3243,
		Address:    "1700 Spartan Dr, Elgin",
	},
	{
		ID:         "oakton",
		Name:       "Oakton Community College",
		University: "Oakton Community College",
		Lat:        42.0404,
		Lng:        -87.8823,
		Address:    "1600 E Golf Rd, Des Plaines",
	},
	{
		ID:         "triton",
		Name:       "Triton College",
		University: "Triton College",
		Lat:        41.9029,
		Lng:        -87.8726,
		Address:    "2000 5th Ave, River Grove",
	},
	{
		ID:         "joliet-junior",
		Name:       "Joliet Junior College",
		University: "Joliet Junior College",
		Lat:        41.5217,
		Lng:        -88.1007,
		Address:    "1215 Houbolt Rd, Joliet",
	},
	{
		ID:         "lewis",
		Name:       "Lewis University",
		University: "Lewis University",
		Lat:        41.5354,
		Lng:        -88.0785,
		Address:    "1 University Pkwy, Romeoville",
	},
	{
		ID:         "st-francis",
		Name:       "University of St. Francis",
		University: "University of St. Francis",
		Lat:        41.5251,
		Lng:        -88.0826,
		Address:    "500 Wilcox St, Joliet",
	},
	{
		ID:         "northern-illinois",
		Name:       "Northern Illinois University",
		University: "Northern Illinois University",
		Lat:        41.9345,
		Lng:        -88.7732,
		Address:    "1425 W Lincoln Hwy, DeKalb",
	},
	{
		ID:         "rush",
		Name:       "Rush University",
		University: "Rush University",
		Lat:        41.8742,
		Lng:        -87.6719,
		Address:    "600 S Paulina St, Chicago",
	},
	{
		ID:         "loyola-maywood",
		Name:       "Loyola (Maywood)",
		University: "Loyola University Chicago",
		Lat:        41.8738,
		Lng:        -87.8441,
		Address:    "2160 S 1st Ave, Maywood",
	},
	{
		ID:         "midwestern",
		Name:       "Midwestern University",
		University: "Midwestern University",
		Lat:        41.8556,
		Lng:        -88.0104,
		Address:    "555 31st St, Downers Grove",
	},
	{
		ID:         "american-islamic",
		Name:       "American Islamic College",
		University: "American Islamic College",
		Lat:        41.9612,
		Lng:        -87.6867,
		Address:    "640 W Irving Park Rd, Chicago",
	},
	{
		ID:         "moody",
		Name:       "Moody Bible Institute",
		University: "Moody Bible Institute",
		Lat:        41.8967,
		Lng:        -87.6350,
		Address:    "820 N LaSalle Blvd, Chicago",
	},
}

// Campuses returns the static campus list in source order. Callers must treat the
// returned slice as read-only.
func Campuses() []Campus {
	return chicagoCampuses
}
