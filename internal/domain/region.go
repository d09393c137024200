package domain

import "strings"

// Region - крупная географическая группа штатов
type Region string

const (
	RegionSouth     Region = "South"
	RegionWest      Region = "West"
	RegionNorth     Region = "North"
	RegionEast      Region = "East"
	RegionNortheast Region = "Northeast"
	RegionCentral   Region = "Central"
)

// Regions возвращает все регионы в порядке убывания типичной проникновенности
func Regions() []Region {
	return []Region{RegionSouth, RegionWest, RegionNorth, RegionCentral, RegionEast, RegionNortheast}
}

// ParseRegion разбирает имя региона без учета регистра
func ParseRegion(s string) (Region, bool) {
	for _, r := range Regions() {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, true
		}
	}
	return "", false
}

// Terrain - тип местности района
type Terrain string

const (
	TerrainPlain       Terrain = "Plain"
	TerrainHilly       Terrain = "Hilly"
	TerrainMountainous Terrain = "Mountainous"
	TerrainCoastal     Terrain = "Coastal"
	TerrainDesert      Terrain = "Desert"
	TerrainForest      Terrain = "Forest"
)

// Terrains возвращает все типы местности
func Terrains() []Terrain {
	return []Terrain{TerrainPlain, TerrainHilly, TerrainMountainous, TerrainCoastal, TerrainDesert, TerrainForest}
}

// Proximity - удаленность района от крупного города
type Proximity string

const (
	ProximityNear   Proximity = "Near"
	ProximityMedium Proximity = "Medium"
	ProximityFar    Proximity = "Far"
)

// Proximities возвращает все варианты удаленности
func Proximities() []Proximity {
	return []Proximity{ProximityNear, ProximityMedium, ProximityFar}
}

// Gender - пол
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders возвращает оба пола, мужской первым
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// AgeGroups - 7 фиксированных возрастных групп
var AgeGroups = []string{"0-14", "15-24", "25-34", "35-44", "45-54", "55-64", "65+"}

// IncomeGroups упорядочены по возрастанию дохода
var IncomeGroups = []string{"Low", "Lower-Middle", "Middle", "Upper-Middle", "High"}

// EducationLevels упорядочены по возрастанию образования
var EducationLevels = []string{"Illiterate", "Primary", "Secondary", "Higher Secondary", "Graduate and Above"}

// DeviceTypes упорядочены от простых устройств к продвинутым
var DeviceTypes = []string{
	"Basic Phone",
	"Feature Phone",
	"Low-end Smartphone",
	"Mid-range Smartphone",
	"High-end Smartphone",
	"Computer/Tablet",
}

// ConnectionTypes - типы подключения в порядке колонок connection_*
var ConnectionTypes = []string{"2G", "3G", "4G", "5G", "Fixed Broadband"}

// Services - онлайн-сервисы, для которых генерируется статистика использования
var Services = []string{
	"Social Media",
	"Video Streaming",
	"Communication",
	"News",
	"Education",
	"Gaming",
	"Banking",
	"Government Services",
	"E-commerce",
	"Healthcare",
	"Agriculture Apps",
}
