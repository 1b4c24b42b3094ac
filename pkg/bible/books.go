package bible

// LocalizedName holds a book's display name per UI language.
type LocalizedName struct {
	PT string
	EN string
}

// BookNames covers the 66 canonical book identifiers.
var BookNames = map[string]LocalizedName{
	"gen": {PT: "Gênesis", EN: "Genesis"},
	"exo": {PT: "Êxodo", EN: "Exodus"},
	"lev": {PT: "Levítico", EN: "Leviticus"},
	"num": {PT: "Números", EN: "Numbers"},
	"deu": {PT: "Deuteronômio", EN: "Deuteronomy"},
	"jos": {PT: "Josué", EN: "Joshua"},
	"jdg": {PT: "Juízes", EN: "Judges"},
	"rut": {PT: "Rute", EN: "Ruth"},
	"1sa": {PT: "1 Samuel", EN: "1 Samuel"},
	"2sa": {PT: "2 Samuel", EN: "2 Samuel"},
	"1ki": {PT: "1 Reis", EN: "1 Kings"},
	"2ki": {PT: "2 Reis", EN: "2 Kings"},
	"1ch": {PT: "1 Crônicas", EN: "1 Chronicles"},
	"2ch": {PT: "2 Crônicas", EN: "2 Chronicles"},
	"ezr": {PT: "Esdras", EN: "Ezra"},
	"neh": {PT: "Neemias", EN: "Nehemiah"},
	"est": {PT: "Ester", EN: "Esther"},
	"job": {PT: "Jó", EN: "Job"},
	"psa": {PT: "Salmos", EN: "Psalms"},
	"pro": {PT: "Provérbios", EN: "Proverbs"},
	"ecc": {PT: "Eclesiastes", EN: "Ecclesiastes"},
	"sng": {PT: "Cantares", EN: "Song of Solomon"},
	"isa": {PT: "Isaías", EN: "Isaiah"},
	"jer": {PT: "Jeremias", EN: "Jeremiah"},
	"lam": {PT: "Lamentações", EN: "Lamentations"},
	"ezk": {PT: "Ezequiel", EN: "Ezekiel"},
	"dan": {PT: "Daniel", EN: "Daniel"},
	"hos": {PT: "Oséias", EN: "Hosea"},
	"jol": {PT: "Joel", EN: "Joel"},
	"amo": {PT: "Amós", EN: "Amos"},
	"oba": {PT: "Obadias", EN: "Obadiah"},
	"jon": {PT: "Jonas", EN: "Jonah"},
	"mic": {PT: "Miquéias", EN: "Micah"},
	"nam": {PT: "Naum", EN: "Nahum"},
	"hab": {PT: "Habacuque", EN: "Habakkuk"},
	"zep": {PT: "Sofonias", EN: "Zephaniah"},
	"hag": {PT: "Ageu", EN: "Haggai"},
	"zec": {PT: "Zacarias", EN: "Zechariah"},
	"mal": {PT: "Malaquias", EN: "Malachi"},
	"mat": {PT: "Mateus", EN: "Matthew"},
	"mrk": {PT: "Marcos", EN: "Mark"},
	"luk": {PT: "Lucas", EN: "Luke"},
	"jhn": {PT: "João", EN: "John"},
	"act": {PT: "Atos", EN: "Acts"},
	"rom": {PT: "Romanos", EN: "Romans"},
	"1co": {PT: "1 Coríntios", EN: "1 Corinthians"},
	"2co": {PT: "2 Coríntios", EN: "2 Corinthians"},
	"gal": {PT: "Gálatas", EN: "Galatians"},
	"eph": {PT: "Efésios", EN: "Ephesians"},
	"php": {PT: "Filipenses", EN: "Philippians"},
	"col": {PT: "Colossenses", EN: "Colossians"},
	"1th": {PT: "1 Tessalonicenses", EN: "1 Thessalonians"},
	"2th": {PT: "2 Tessalonicenses", EN: "2 Thessalonians"},
	"1ti": {PT: "1 Timóteo", EN: "1 Timothy"},
	"2ti": {PT: "2 Timóteo", EN: "2 Timothy"},
	"tit": {PT: "Tito", EN: "Titus"},
	"phm": {PT: "Filemom", EN: "Philemon"},
	"heb": {PT: "Hebreus", EN: "Hebrews"},
	"jas": {PT: "Tiago", EN: "James"},
	"1pe": {PT: "1 Pedro", EN: "1 Peter"},
	"2pe": {PT: "2 Pedro", EN: "2 Peter"},
	"1jn": {PT: "1 João", EN: "1 John"},
	"2jn": {PT: "2 João", EN: "2 John"},
	"3jn": {PT: "3 João", EN: "3 John"},
	"jud": {PT: "Judas", EN: "Jude"},
	"rev": {PT: "Apocalipse", EN: "Revelation"},
}

// BookName returns the localized name of bookID. Unknown ids and languages
// other than pt/en fall back to the raw id, so callers never need to branch.
func BookName(bookID string, lang Language) string {
	names, ok := BookNames[bookID]
	if !ok {
		return bookID
	}
	var name string
	switch lang {
	case Portuguese:
		name = names.PT
	case English:
		name = names.EN
	}
	if name == "" {
		return bookID
	}
	return name
}

// IsCanonicalBook reports whether bookID is one of the 66 canonical ids.
func IsCanonicalBook(bookID string) bool {
	_, ok := BookNames[bookID]
	return ok
}
