package engine

// defaultAirports is the built-in world directory. The first two entries are
// the fallback origin/destination pair used when a location cannot be
// resolved at all.
var defaultAirports = []Airport{
	{Code: "DEL", City: "New Delhi", Country: "India", Lat: 28.5562, Lng: 77.1000},
	{Code: "BOM", City: "Mumbai", Country: "India", Lat: 19.0896, Lng: 72.8656},
	{Code: "BLR", City: "Bengaluru", Country: "India", Lat: 13.1986, Lng: 77.7066},
	{Code: "MAA", City: "Chennai", Country: "India", Lat: 12.9941, Lng: 80.1709},
	{Code: "CCU", City: "Kolkata", Country: "India", Lat: 22.6547, Lng: 88.4467},
	{Code: "HYD", City: "Hyderabad", Country: "India", Lat: 17.2403, Lng: 78.4294},
	{Code: "GOI", City: "Goa", Country: "India", Lat: 15.3808, Lng: 73.8314},
	{Code: "COK", City: "Kochi", Country: "India", Lat: 10.1520, Lng: 76.4019},
	{Code: "JFK", City: "New York", Country: "United States", Lat: 40.6413, Lng: -73.7781},
	{Code: "LAX", City: "Los Angeles", Country: "United States", Lat: 33.9416, Lng: -118.4085},
	{Code: "SFO", City: "San Francisco", Country: "United States", Lat: 37.6213, Lng: -122.3790},
	{Code: "ORD", City: "Chicago", Country: "United States", Lat: 41.9742, Lng: -87.9073},
	{Code: "MIA", City: "Miami", Country: "United States", Lat: 25.7959, Lng: -80.2870},
	{Code: "SEA", City: "Seattle", Country: "United States", Lat: 47.4502, Lng: -122.3088},
	{Code: "YYZ", City: "Toronto", Country: "Canada", Lat: 43.6777, Lng: -79.6248},
	{Code: "LHR", City: "London", Country: "United Kingdom", Lat: 51.4700, Lng: -0.4543},
	{Code: "CDG", City: "Paris", Country: "France", Lat: 49.0097, Lng: 2.5479},
	{Code: "FRA", City: "Frankfurt", Country: "Germany", Lat: 50.0379, Lng: 8.5622},
	{Code: "AMS", City: "Amsterdam", Country: "Netherlands", Lat: 52.3105, Lng: 4.7683},
	{Code: "MAD", City: "Madrid", Country: "Spain", Lat: 40.4983, Lng: -3.5676},
	{Code: "FCO", City: "Rome", Country: "Italy", Lat: 41.8003, Lng: 12.2389},
	{Code: "ZRH", City: "Zurich", Country: "Switzerland", Lat: 47.4582, Lng: 8.5555},
	{Code: "IST", City: "Istanbul", Country: "Turkey", Lat: 41.2753, Lng: 28.7519},
	{Code: "DXB", City: "Dubai", Country: "United Arab Emirates", Lat: 25.2532, Lng: 55.3657},
	{Code: "DOH", City: "Doha", Country: "Qatar", Lat: 25.2731, Lng: 51.6081},
	{Code: "SIN", City: "Singapore", Country: "Singapore", Lat: 1.3644, Lng: 103.9915},
	{Code: "BKK", City: "Bangkok", Country: "Thailand", Lat: 13.6900, Lng: 100.7501},
	{Code: "HKG", City: "Hong Kong", Country: "China", Lat: 22.3080, Lng: 113.9185},
	{Code: "NRT", City: "Tokyo", Country: "Japan", Lat: 35.7720, Lng: 140.3929},
	{Code: "ICN", City: "Seoul", Country: "South Korea", Lat: 37.4602, Lng: 126.4407},
	{Code: "PEK", City: "Beijing", Country: "China", Lat: 40.0799, Lng: 116.6031},
	{Code: "SYD", City: "Sydney", Country: "Australia", Lat: -33.9399, Lng: 151.1753},
	{Code: "AKL", City: "Auckland", Country: "New Zealand", Lat: -37.0082, Lng: 174.7850},
	{Code: "GRU", City: "Sao Paulo", Country: "Brazil", Lat: -23.4356, Lng: -46.4731},
	{Code: "JNB", City: "Johannesburg", Country: "South Africa", Lat: -26.1392, Lng: 28.2460},
	{Code: "CAI", City: "Cairo", Country: "Egypt", Lat: 30.1219, Lng: 31.4056},
}

// placeCentroids maps common metro names and aliases to a city-center
// coordinate. Used for fuzzy resolution: the query is placed on the map and
// the nearest airport wins, with the centroid-to-airport gap reported back as
// the nearest-match distance.
var placeCentroids = map[string]Coordinate{
	"nyc":           {Lat: 40.7128, Lng: -74.0060},
	"new york city": {Lat: 40.7128, Lng: -74.0060},
	"lon":           {Lat: 51.5074, Lng: -0.1278},
	"london city":   {Lat: 51.5074, Lng: -0.1278},
	"la":            {Lat: 34.0522, Lng: -118.2437},
	"sf":            {Lat: 37.7749, Lng: -122.4194},
	"bay area":      {Lat: 37.7749, Lng: -122.4194},
	"bombay":        {Lat: 18.9582, Lng: 72.8321},
	"madras":        {Lat: 13.0827, Lng: 80.2707},
	"calcutta":      {Lat: 22.5726, Lng: 88.3639},
	"bangalore":     {Lat: 12.9716, Lng: 77.5946},
	"ncr":           {Lat: 28.6139, Lng: 77.2090},
	"gurgaon":       {Lat: 28.4595, Lng: 77.0266},
	"noida":         {Lat: 28.5355, Lng: 77.3910},
	"navi mumbai":   {Lat: 19.0330, Lng: 73.0297},
	"tokyo city":    {Lat: 35.6762, Lng: 139.6503},
	"saigon":        {Lat: 10.8231, Lng: 106.6297},

	// City centers for directory cities, so partial-text matches can still
	// report a meaningful center-to-airport gap.
	"new delhi":     {Lat: 28.6139, Lng: 77.2090},
	"mumbai":        {Lat: 18.9582, Lng: 72.8321},
	"bengaluru":     {Lat: 12.9716, Lng: 77.5946},
	"chennai":       {Lat: 13.0827, Lng: 80.2707},
	"kolkata":       {Lat: 22.5726, Lng: 88.3639},
	"new york":      {Lat: 40.7128, Lng: -74.0060},
	"los angeles":   {Lat: 34.0522, Lng: -118.2437},
	"san francisco": {Lat: 37.7749, Lng: -122.4194},
	"chicago":       {Lat: 41.8781, Lng: -87.6298},
	"london":        {Lat: 51.5074, Lng: -0.1278},
	"paris":         {Lat: 48.8566, Lng: 2.3522},
	"tokyo":         {Lat: 35.6762, Lng: 139.6503},
	"singapore":     {Lat: 1.3521, Lng: 103.8198},
	"dubai":         {Lat: 25.2048, Lng: 55.2708},
	"sydney":        {Lat: -33.8688, Lng: 151.2093},
}
