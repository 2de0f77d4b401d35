package wire

// Response is the server's reply to one client request, an externally-tagged
// enum: a bare string for data-less variants, a single-key object for
// variants carrying data. Every constructor below returns one as an Enum.

// Login

func LoginOk() Enum                 { return Tag("Ok") }
func LoginUsernameTaken() Enum       { return Tag("UsernameAlreadyTaken") }
func LoginInvalidUsername() Enum    { return Tag("InvalidUsername") }
func LoginAlreadyLoggedIn() Enum    { return Tag("AlreadyLoggedIn") }

// List rooms

type RoomSummary struct {
	RoomID     string `json:"room_id"`
	Name       string `json:"name"`
	Visibility string `json:"visibility"`
	PlayerNo   int    `json:"player_no"`
}

func ListRoomsOk(rooms []RoomSummary) Enum { return TagWith("Ok", rooms) }

// Register room

type RegisterRoomOkData struct {
	RoomID string `json:"room_id"`
}

func RegisterRoomOk(roomID string) Enum  { return TagWith("Ok", RegisterRoomOkData{RoomID: roomID}) }
func RegisterRoomInvalidName() Enum      { return Tag("InvalidName") }
func RegisterRoomNotLoggedIn() Enum      { return Tag("NotLoggedIn") }

// Join / leave room

func JoinRoomOk() Enum           { return Tag("Ok") }
func JoinRoomNotFound() Enum     { return Tag("RoomNotFound") }
func JoinRoomAlreadyInRoom() Enum { return Tag("AlreadyInRoom") }
func JoinRoomNotLoggedIn() Enum  { return Tag("NotLoggedIn") }

func LeaveRoomOk() Enum        { return Tag("Ok") }
func LeaveRoomNotInRoom() Enum { return Tag("NotInRoom") }

// List places

type PlaceEntry struct {
	Position PlayerJSON `json:"position"`
	Occupant *string    `json:"occupant"`
}

func ListPlacesOk(places []PlaceEntry) Enum { return TagWith("Ok", places) }
func ListPlacesNotInRoom() Enum             { return Tag("NotInRoom") }

// Select place

func SelectPlaceOk() Enum          { return Tag("Ok") }
func SelectPlaceTaken() Enum       { return Tag("PlaceTaken") }
func SelectPlaceNotInRoom() Enum   { return Tag("NotInRoom") }
func SelectPlaceWrongState() Enum  { return Tag("WrongGameState") }
func SelectPlaceInvalid() Enum     { return Tag("InvalidPosition") }

// Get cards

type GetCardsOkData struct {
	Cards    []CardJSON `json:"cards"`
	Position PlayerJSON `json:"position"`
}

func GetCardsOk(c []CardJSON, pos PlayerJSON) Enum { return TagWith("Ok", GetCardsOkData{Cards: c, Position: pos}) }
func GetCardsNotAPlayer() Enum                     { return Tag("NotAPlayer") }
func GetCardsNotInRoom() Enum                      { return Tag("NotInRoom") }

// Make bid — mirrors deal.BidError one-to-one.

func MakeBidOk() Enum                 { return Tag("Ok") }
func MakeBidGameStateMismatch() Enum  { return Tag("GameStateMismatch") }
func MakeBidPlayerOutOfTurn() Enum    { return Tag("PlayerOutOfTurn") }
func MakeBidWrongBid() Enum           { return Tag("WrongBid") }
func MakeBidCantDouble() Enum         { return Tag("CantDouble") }
func MakeBidCantRedouble() Enum       { return Tag("CantRedouble") }
func MakeBidNotAPlayer() Enum         { return Tag("NotAPlayer") }

// Make trick — mirrors deal.TrickError one-to-one.

func MakeTrickOk() Enum                { return Tag("Ok") }
func MakeTrickGameStateMismatch() Enum { return Tag("GameStateMismatch") }
func MakeTrickPlayerOutOfTurn() Enum   { return Tag("PlayerOutOfTurn") }
func MakeTrickCardNotFound() Enum      { return Tag("CardNotFound") }
func MakeTrickWrongCardSuit() Enum     { return Tag("WrongCardSuit") }
func MakeTrickNotAPlayer() Enum        { return Tag("NotAPlayer") }
