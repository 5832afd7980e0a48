package services

import (
	"sort"
	"strings"
)

// Static reference tables: region -> district -> neighborhoods, and
// region -> universities. Read-only, process-wide.

var regionData = map[string]map[string][]string{
	"서울": {
		"강남구":  {"강남역", "신사/압구정", "청담/삼성", "역삼/선릉", "대치/도곡"},
		"마포구":  {"홍대입구", "연남동", "신촌/이대", "망원/합정", "상수"},
		"서대문구": {"신촌", "연희동", "북가좌"},
		"성동구":  {"성수/서울숲", "왕십리", "한양대"},
		"용산구":  {"이태원/한남", "용산역", "숙대입구"},
		"광진구":  {"건대입구", "구의", "군자"},
		"관악구":  {"서울대입구", "신림", "샤로수길"},
		"송파구":  {"잠실/석촌", "방이동", "송리단길"},
		"종로구":  {"혜화/대학로", "익선동", "종각/광화문"},
		"중구":   {"을지로/힙지로", "명동", "동국대"},
		"동작구":  {"노량진", "중앙대/상도"},
		"성북구":  {"안암(고대)", "성신여대"},
		"노원구":  {"노원역", "공릉(과기대)", "월계"},
		"구로구":  {"구로디지털단지", "신도림"},
		"영등포구": {"영등포/타임스퀘어", "여의도", "문래창작촌"},
	},
	"경기": {
		"수원시":  {"수원역/AK", "인계동", "행궁동", "영통/경희대", "아주대"},
		"성남시":  {"서현역", "판교", "정자/미금", "모란", "가천대"},
		"고양시":  {"일산/라페스타", "화정", "백석", "원마운트"},
		"용인시":  {"죽전/단국대", "기흥", "역북(명지대)", "에버랜드"},
		"안양시":  {"안양일번가", "범계", "평촌"},
		"부천시":  {"부천역", "신중동", "상동"},
		"안산시":  {"중앙동", "한양대에리카", "고잔신도시"},
		"의정부시": {"의정부역", "민락2지구"},
	},
	"인천": {
		"부평구":  {"부평역", "문화의거리"},
		"남동구":  {"구월동", "인천터미널"},
		"미추홀구": {"인하대후문", "주안"},
		"연수구":  {"송도/센트럴파크", "연수동", "트리플스트리트"},
		"서구":   {"청라", "루원시티"},
	},
	"부산": {
		"부산진구": {"서면", "전포카페거리"},
		"금정구":  {"부산대앞"},
		"남구":   {"경성대/부경대", "대연"},
		"해운대구": {"해운대", "센텀시티", "장산", "해리단길"},
		"수영구":  {"광안리", "민락"},
		"중구":   {"남포동", "광복동"},
		"사하구":  {"하단(동아대)"},
	},
	"대구": {
		"중구":  {"동성로", "삼덕동", "교동"},
		"북구":  {"경북대북문", "칠곡3지구"},
		"달서구": {"상인동", "계명대동문", "광장코아"},
		"수성구": {"수성못", "범어", "황금동"},
	},
	"대전": {
		"서구":  {"둔산동", "갈마동"},
		"유성구": {"궁동(충남대)", "봉명동", "전민동", "죽동"},
		"중구":  {"은행동/으능정이", "대흥동"},
		"동구":  {"대전복합터미널", "우송대/대전대"},
	},
	"광주": {
		"동구":  {"충장로", "동명동", "조선대후문"},
		"북구":  {"전남대후문", "용봉동"},
		"서구":  {"상무지구", "유스퀘어"},
		"광산구": {"첨단지구", "수완지구"},
	},
	"울산": {
		"남구": {"삼산동", "달동", "울산대앞(무거동)"},
		"중구": {"성남동"},
		"동구": {"일산지"},
	},
	"세종": {
		"세종시": {"나성동", "보람동", "조치원(고대/홍대)"},
	},
	"강원": {
		"춘천시": {"강원대후문", "명동", "애막골"},
		"원주시": {"단계동", "무실동"},
		"강릉시": {"교동택지", "강릉역", "안목해변"},
	},
	"충북": {
		"청주시": {"충북대중문", "성안길", "율량동", "청주대중문"},
		"충주시": {"연수동", "신연수동"},
	},
	"충남": {
		"천안시": {"신부동(야우리)", "두정동", "불당동", "안서동(대학가)"},
		"아산시": {"신용화동", "탕정", "순천향대후문"},
	},
	"전북": {
		"전주시": {"전북대구정문", "신시가지", "객리단길", "한옥마을"},
		"익산시": {"원광대대학로", "영등동"},
		"군산시": {"수송동", "나운동"},
	},
	"전남": {
		"목포시": {"평화광장", "목포대후문", "북항"},
		"순천시": {"조례동", "연향동"},
		"여수시": {"여서동", "해양공원", "여천"},
	},
	"경북": {
		"경산시": {"영남대앞", "하양(대가대)"},
		"포항시": {"영일대", "쌍사", "이동"},
		"구미시": {"인동", "금오산", "옥계"},
		"경주시": {"황리단길", "동국대석장", "성건동"},
	},
	"경남": {
		"창원시": {"상남동", "합성동", "창원대앞", "용호동"},
		"진주시": {"경상대후문", "평거동", "칠암동"},
		"김해시": {"내외동", "인제대앞", "율하"},
	},
	"제주": {
		"제주시":  {"제주시청", "아라동", "노형동/연동"},
		"서귀포시": {"서귀포시내", "중문"},
	},
}

var regionUniversities = map[string][]string{
	"서울": {"서울대", "연세대", "고려대", "서강대", "성균관대", "한양대", "중앙대", "경희대", "한국외대", "서울시립대", "이화여대", "숙명여대", "건국대", "동국대", "홍익대", "국민대", "숭실대", "세종대", "성신여대", "광운대", "명지대", "상명대", "삼육대", "서경대", "서울여대", "동덕여대", "덕성여대"},
	"경기": {"가천대", "경기대", "경희대(국제)", "단국대(죽전)", "성균관대(자연)", "아주대", "인하대", "항공대", "한양대(에리카)", "명지대(자연)", "한국외대(글로벌)", "가톨릭대", "강남대", "대진대", "성결대", "수원대", "안양대", "용인대", "중부대", "평택대", "한경대", "한신대", "한세대", "협성대"},
	"인천": {"인하대", "인천대", "연세대(국제)", "가천대(메디컬)", "경인교대", "청운대(인천)"},
	"부산": {"부산대", "부경대", "동아대", "해양대", "경성대", "동의대", "신라대", "동서대", "부산외대", "동명대", "영산대", "고신대"},
	"대구": {"경북대", "계명대", "영남대", "대구대", "대구가톨릭대", "경일대", "대구한의대"},
	"대전": {"카이스트", "충남대", "한밭대", "대전대", "한남대", "목원대", "우송대", "배재대", "건양대"},
	"광주": {"전남대", "조선대", "호남대", "광주대", "광주여대", "남부대", "송원대"},
	"울산": {"울산대", "UNIST"},
	"세종": {"고려대(세종)", "홍익대(세종)"},
	"강원": {"강원대", "한림대", "연세대(미래)", "강릉원주대", "가톨릭관동대", "상지대", "경동대"},
	"충북": {"충북대", "청주대", "한국교원대", "서원대", "한국교통대", "건국대(글로컬)", "세명대", "우석대(진천)"},
	"충남": {"단국대(천안)", "상명대(천안)", "순천향대", "호서대", "백석대", "공주대", "건양대", "남서울대", "나사렛대", "선문대", "중부대", "청운대"},
	"전북": {"전북대", "전주대", "원광대", "우석대", "군산대", "호원대"},
	"전남": {"목포대", "순천대", "목포해양대", "동신대", "초당대"},
	"경북": {"영남대", "대구대", "대구가톨릭대", "포항공대", "금오공대", "안동대", "동국대(와이즈)", "경운대", "김천대"},
	"경남": {"경상국립대", "창원대", "경남대", "인제대", "영산대", "가야대"},
	"제주": {"제주대", "제주국제대"},
}

// cityOrder keeps the city list stable for clients (maps don't iterate in order)
var cityOrder = []string{"서울", "경기", "인천", "부산", "대구", "대전", "광주", "울산", "세종", "강원", "충북", "충남", "전북", "전남", "경북", "경남", "제주"}

// Cities returns every selectable city/province in display order.
func Cities() []string {
	out := make([]string, len(cityOrder))
	copy(out, cityOrder)
	return out
}

// Districts returns the districts of a city, or nil for an unknown city.
func Districts(city string) []string {
	districts, ok := regionData[city]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(districts))
	for d := range districts {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Neighborhoods returns the neighborhoods of a district within a city.
func Neighborhoods(city, district string) []string {
	districts, ok := regionData[city]
	if !ok {
		return nil
	}
	dongs, ok := districts[district]
	if !ok {
		return nil
	}
	out := make([]string, len(dongs))
	copy(out, dongs)
	return out
}

// HasNeighborhood reports whether a city/district/neighborhood triple resolves.
// "전체" (whole district) is accepted for any known district.
func HasNeighborhood(city, district, dong string) bool {
	dongs := Neighborhoods(city, district)
	if dongs == nil {
		return false
	}
	if dong == "전체" {
		return true
	}
	for _, d := range dongs {
		if d == dong {
			return true
		}
	}
	return false
}

// UniversitiesFor returns the recommended universities of a city,
// falling back to the Seoul list for unknown cities.
func UniversitiesFor(city string) []string {
	univs, ok := regionUniversities[city]
	if !ok {
		univs = regionUniversities["서울"]
	}
	out := make([]string, len(univs))
	copy(out, univs)
	return out
}

// CityOfRegion finds the city contained in a free-form region string
// (e.g. "마포구 홍대입구" has no city, "서울 마포구" does), defaulting to 서울.
func CityOfRegion(region string) string {
	for _, city := range cityOrder {
		if strings.Contains(region, city) {
			return city
		}
	}
	return "서울"
}
