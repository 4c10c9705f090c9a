package county

import "github.com/paulmach/orb"

// County ids, one per Washington county.
const (
	IDAdams       ID = "adams"
	IDAsotin      ID = "asotin"
	IDBenton      ID = "benton"
	IDChelan      ID = "chelan"
	IDClallam     ID = "clallam"
	IDClark       ID = "clark"
	IDColumbia    ID = "columbia"
	IDCowlitz     ID = "cowlitz"
	IDDouglas     ID = "douglas"
	IDFerry       ID = "ferry"
	IDFranklin    ID = "franklin"
	IDGarfield    ID = "garfield"
	IDGrant       ID = "grant"
	IDGraysHarbor ID = "grays_harbor"
	IDIsland      ID = "island"
	IDJefferson   ID = "jefferson"
	IDKing        ID = "king"
	IDKitsap      ID = "kitsap"
	IDKittitas    ID = "kittitas"
	IDKlickitat   ID = "klickitat"
	IDLewis       ID = "lewis"
	IDLincoln     ID = "lincoln"
	IDMason       ID = "mason"
	IDOkanogan    ID = "okanogan"
	IDPacific     ID = "pacific"
	IDPendOreille ID = "pend_oreille"
	IDPierce      ID = "pierce"
	IDSanJuan     ID = "san_juan"
	IDSkagit      ID = "skagit"
	IDSkamania    ID = "skamania"
	IDSnohomish   ID = "snohomish"
	IDSpokane     ID = "spokane"
	IDStevens     ID = "stevens"
	IDThurston    ID = "thurston"
	IDWahkiakum   ID = "wahkiakum"
	IDWallaWalla  ID = "walla_walla"
	IDWhatcom     ID = "whatcom"
	IDWhitman     ID = "whitman"
	IDYakima      ID = "yakima"
)

// table is keyed by id. Seat points are (lon, lat).
//
//nolint:gochecknoglobals
var table = map[ID]County{
	IDAdams: {
		ID:        IDAdams,
		Name:      "Adams",
		Metro:     MetroNone,
		Seat:      "Ritzville",
		SeatPoint: orb.Point{-118.380, 47.127},
		Adjacent:  []ID{IDFranklin, IDGrant, IDLincoln, IDWhitman},
	},
	IDAsotin: {
		ID:        IDAsotin,
		Name:      "Asotin",
		Metro:     MetroNone,
		Seat:      "Asotin",
		SeatPoint: orb.Point{-117.048, 46.339},
		Adjacent:  []ID{IDGarfield, IDWhitman},
	},
	IDBenton: {
		ID:        IDBenton,
		Name:      "Benton",
		Metro:     MetroTriCities,
		Seat:      "Prosser",
		SeatPoint: orb.Point{-119.769, 46.207},
		Adjacent:  []ID{IDFranklin, IDGrant, IDKlickitat, IDWallaWalla, IDYakima},
	},
	IDChelan: {
		ID:        IDChelan,
		Name:      "Chelan",
		Metro:     MetroWenatchee,
		Seat:      "Wenatchee",
		SeatPoint: orb.Point{-120.310, 47.423},
		Adjacent:  []ID{IDDouglas, IDKing, IDKittitas, IDOkanogan, IDSkagit, IDSnohomish},
	},
	IDClallam: {
		ID:        IDClallam,
		Name:      "Clallam",
		Metro:     MetroNone,
		Seat:      "Port Angeles",
		SeatPoint: orb.Point{-123.430, 48.118},
		Adjacent:  []ID{IDJefferson},
	},
	IDClark: {
		ID:        IDClark,
		Name:      "Clark",
		Metro:     MetroPortlandVancouver,
		Seat:      "Vancouver",
		SeatPoint: orb.Point{-122.661, 45.639},
		Adjacent:  []ID{IDCowlitz, IDSkamania},
	},
	IDColumbia: {
		ID:        IDColumbia,
		Name:      "Columbia",
		Metro:     MetroNone,
		Seat:      "Dayton",
		SeatPoint: orb.Point{-117.972, 46.324},
		Adjacent:  []ID{IDFranklin, IDGarfield, IDWallaWalla, IDWhitman},
	},
	IDCowlitz: {
		ID:        IDCowlitz,
		Name:      "Cowlitz",
		Metro:     MetroPortlandVancouver,
		Seat:      "Kelso",
		SeatPoint: orb.Point{-122.908, 46.147},
		Adjacent:  []ID{IDClark, IDLewis, IDSkamania, IDWahkiakum},
	},
	IDDouglas: {
		ID:        IDDouglas,
		Name:      "Douglas",
		Metro:     MetroWenatchee,
		Seat:      "Waterville",
		SeatPoint: orb.Point{-120.071, 47.647},
		Adjacent:  []ID{IDChelan, IDGrant, IDLincoln, IDOkanogan},
	},
	IDFerry: {
		ID:        IDFerry,
		Name:      "Ferry",
		Metro:     MetroNone,
		Seat:      "Republic",
		SeatPoint: orb.Point{-118.738, 48.648},
		Adjacent:  []ID{IDLincoln, IDOkanogan, IDStevens},
	},
	IDFranklin: {
		ID:        IDFranklin,
		Name:      "Franklin",
		Metro:     MetroTriCities,
		Seat:      "Pasco",
		SeatPoint: orb.Point{-119.101, 46.240},
		Adjacent:  []ID{IDAdams, IDBenton, IDColumbia, IDGrant, IDWallaWalla, IDWhitman},
	},
	IDGarfield: {
		ID:        IDGarfield,
		Name:      "Garfield",
		Metro:     MetroNone,
		Seat:      "Pomeroy",
		SeatPoint: orb.Point{-117.603, 46.475},
		Adjacent:  []ID{IDAsotin, IDColumbia, IDWhitman},
	},
	IDGrant: {
		ID:        IDGrant,
		Name:      "Grant",
		Metro:     MetroNone,
		Seat:      "Ephrata",
		SeatPoint: orb.Point{-119.553, 47.318},
		Adjacent:  []ID{IDAdams, IDBenton, IDDouglas, IDFranklin, IDKittitas, IDLincoln, IDYakima},
	},
	IDGraysHarbor: {
		ID:        IDGraysHarbor,
		Name:      "Grays Harbor",
		Metro:     MetroNone,
		Seat:      "Montesano",
		SeatPoint: orb.Point{-123.603, 46.981},
		Adjacent:  []ID{IDJefferson, IDLewis, IDMason, IDPacific, IDThurston},
	},
	IDIsland: {
		ID:        IDIsland,
		Name:      "Island",
		Metro:     MetroPugetSound,
		Seat:      "Coupeville",
		SeatPoint: orb.Point{-122.686, 48.220},
		Adjacent:  []ID{IDSanJuan, IDSkagit, IDSnohomish},
	},
	IDJefferson: {
		ID:        IDJefferson,
		Name:      "Jefferson",
		Metro:     MetroNone,
		Seat:      "Port Townsend",
		SeatPoint: orb.Point{-122.760, 48.117},
		Adjacent:  []ID{IDClallam, IDGraysHarbor, IDMason},
	},
	IDKing: {
		ID:        IDKing,
		Name:      "King",
		Metro:     MetroPugetSound,
		Seat:      "Seattle",
		SeatPoint: orb.Point{-122.332, 47.606},
		Adjacent:  []ID{IDChelan, IDKittitas, IDPierce, IDSnohomish},
	},
	IDKitsap: {
		ID:        IDKitsap,
		Name:      "Kitsap",
		Metro:     MetroPugetSound,
		Seat:      "Port Orchard",
		SeatPoint: orb.Point{-122.636, 47.540},
		Adjacent:  []ID{IDMason, IDPierce},
	},
	IDKittitas: {
		ID:        IDKittitas,
		Name:      "Kittitas",
		Metro:     MetroYakima,
		Seat:      "Ellensburg",
		SeatPoint: orb.Point{-120.548, 46.996},
		Adjacent:  []ID{IDChelan, IDGrant, IDKing, IDPierce, IDYakima},
	},
	IDKlickitat: {
		ID:        IDKlickitat,
		Name:      "Klickitat",
		Metro:     MetroNone,
		Seat:      "Goldendale",
		SeatPoint: orb.Point{-120.821, 45.820},
		Adjacent:  []ID{IDBenton, IDSkamania, IDYakima},
	},
	IDLewis: {
		ID:        IDLewis,
		Name:      "Lewis",
		Metro:     MetroNone,
		Seat:      "Chehalis",
		SeatPoint: orb.Point{-122.964, 46.662},
		Adjacent:  []ID{IDCowlitz, IDGraysHarbor, IDPacific, IDPierce, IDSkamania, IDThurston, IDWahkiakum, IDYakima},
	},
	IDLincoln: {
		ID:        IDLincoln,
		Name:      "Lincoln",
		Metro:     MetroNone,
		Seat:      "Davenport",
		SeatPoint: orb.Point{-118.150, 47.654},
		Adjacent:  []ID{IDAdams, IDDouglas, IDFerry, IDGrant, IDOkanogan, IDSpokane, IDStevens},
	},
	IDMason: {
		ID:        IDMason,
		Name:      "Mason",
		Metro:     MetroNone,
		Seat:      "Shelton",
		SeatPoint: orb.Point{-123.100, 47.215},
		Adjacent:  []ID{IDGraysHarbor, IDJefferson, IDKitsap, IDPierce, IDThurston},
	},
	IDOkanogan: {
		ID:        IDOkanogan,
		Name:      "Okanogan",
		Metro:     MetroNone,
		Seat:      "Okanogan",
		SeatPoint: orb.Point{-119.584, 48.361},
		Adjacent:  []ID{IDChelan, IDDouglas, IDFerry, IDLincoln, IDSkagit, IDWhatcom},
	},
	IDPacific: {
		ID:        IDPacific,
		Name:      "Pacific",
		Metro:     MetroNone,
		Seat:      "South Bend",
		SeatPoint: orb.Point{-123.805, 46.663},
		Adjacent:  []ID{IDGraysHarbor, IDLewis, IDWahkiakum},
	},
	IDPendOreille: {
		ID:        IDPendOreille,
		Name:      "Pend Oreille",
		Metro:     MetroSpokane,
		Seat:      "Newport",
		SeatPoint: orb.Point{-117.043, 48.180},
		Adjacent:  []ID{IDSpokane, IDStevens},
	},
	IDPierce: {
		ID:        IDPierce,
		Name:      "Pierce",
		Metro:     MetroPugetSound,
		Seat:      "Tacoma",
		SeatPoint: orb.Point{-122.444, 47.253},
		Adjacent:  []ID{IDKing, IDKitsap, IDKittitas, IDLewis, IDMason, IDThurston, IDYakima},
	},
	IDSanJuan: {
		ID:        IDSanJuan,
		Name:      "San Juan",
		Metro:     MetroBellingham,
		Seat:      "Friday Harbor",
		SeatPoint: orb.Point{-123.017, 48.534},
		Adjacent:  []ID{IDIsland, IDSkagit, IDWhatcom},
	},
	IDSkagit: {
		ID:        IDSkagit,
		Name:      "Skagit",
		Metro:     MetroBellingham,
		Seat:      "Mount Vernon",
		SeatPoint: orb.Point{-122.334, 48.421},
		Adjacent:  []ID{IDChelan, IDIsland, IDOkanogan, IDSanJuan, IDSnohomish, IDWhatcom},
	},
	IDSkamania: {
		ID:        IDSkamania,
		Name:      "Skamania",
		Metro:     MetroPortlandVancouver,
		Seat:      "Stevenson",
		SeatPoint: orb.Point{-121.884, 45.696},
		Adjacent:  []ID{IDClark, IDCowlitz, IDKlickitat, IDLewis, IDYakima},
	},
	IDSnohomish: {
		ID:        IDSnohomish,
		Name:      "Snohomish",
		Metro:     MetroPugetSound,
		Seat:      "Everett",
		SeatPoint: orb.Point{-122.202, 47.979},
		Adjacent:  []ID{IDChelan, IDIsland, IDKing, IDSkagit},
	},
	IDSpokane: {
		ID:        IDSpokane,
		Name:      "Spokane",
		Metro:     MetroSpokane,
		Seat:      "Spokane",
		SeatPoint: orb.Point{-117.426, 47.659},
		Adjacent:  []ID{IDLincoln, IDPendOreille, IDStevens, IDWhitman},
	},
	IDStevens: {
		ID:        IDStevens,
		Name:      "Stevens",
		Metro:     MetroSpokane,
		Seat:      "Colville",
		SeatPoint: orb.Point{-117.905, 48.547},
		Adjacent:  []ID{IDFerry, IDLincoln, IDPendOreille, IDSpokane},
	},
	IDThurston: {
		ID:        IDThurston,
		Name:      "Thurston",
		Metro:     MetroPugetSound,
		Seat:      "Olympia",
		SeatPoint: orb.Point{-122.901, 47.038},
		Adjacent:  []ID{IDGraysHarbor, IDLewis, IDMason, IDPierce},
	},
	IDWahkiakum: {
		ID:        IDWahkiakum,
		Name:      "Wahkiakum",
		Metro:     MetroNone,
		Seat:      "Cathlamet",
		SeatPoint: orb.Point{-123.383, 46.203},
		Adjacent:  []ID{IDCowlitz, IDLewis, IDPacific},
	},
	IDWallaWalla: {
		ID:        IDWallaWalla,
		Name:      "Walla Walla",
		Metro:     MetroNone,
		Seat:      "Walla Walla",
		SeatPoint: orb.Point{-118.343, 46.065},
		Adjacent:  []ID{IDBenton, IDColumbia, IDFranklin},
	},
	IDWhatcom: {
		ID:        IDWhatcom,
		Name:      "Whatcom",
		Metro:     MetroBellingham,
		Seat:      "Bellingham",
		SeatPoint: orb.Point{-122.479, 48.749},
		Adjacent:  []ID{IDOkanogan, IDSanJuan, IDSkagit},
	},
	IDWhitman: {
		ID:        IDWhitman,
		Name:      "Whitman",
		Metro:     MetroNone,
		Seat:      "Colfax",
		SeatPoint: orb.Point{-117.364, 46.880},
		Adjacent:  []ID{IDAdams, IDAsotin, IDColumbia, IDFranklin, IDGarfield, IDSpokane},
	},
	IDYakima: {
		ID:        IDYakima,
		Name:      "Yakima",
		Metro:     MetroYakima,
		Seat:      "Yakima",
		SeatPoint: orb.Point{-120.506, 46.602},
		Adjacent:  []ID{IDBenton, IDGrant, IDKittitas, IDKlickitat, IDLewis, IDPierce, IDSkamania},
	},
}
