package services

import "github.com/qiansheng/tianji-ai-go/internal/models"

// The eight trigrams indexed by their three-bit value (bit 0 = bottom line,
// yang = 1).
var trigrams = [8]models.Trigram{
	{Value: 0, Name: "坤", Aspect: "地", Symbol: "☷", Attribute: "柔顺"},
	{Value: 1, Name: "震", Aspect: "雷", Symbol: "☳", Attribute: "震动"},
	{Value: 2, Name: "坎", Aspect: "水", Symbol: "☵", Attribute: "陷险"},
	{Value: 3, Name: "兑", Aspect: "泽", Symbol: "☱", Attribute: "喜悦"},
	{Value: 4, Name: "艮", Aspect: "山", Symbol: "☶", Attribute: "止静"},
	{Value: 5, Name: "离", Aspect: "火", Symbol: "☲", Attribute: "光明"},
	{Value: 6, Name: "巽", Aspect: "风", Symbol: "☴", Attribute: "顺入"},
	{Value: 7, Name: "乾", Aspect: "天", Symbol: "☰", Attribute: "刚健"},
}

// trigramOrder lists trigram values in the traditional table order
// 乾兑离震巽坎艮坤, the axis order of kingWenMatrix.
var trigramOrder = [8]uint8{7, 3, 5, 1, 6, 2, 4, 0}

// kingWenMatrix names the hexagram for every (upper, lower) trigram pair,
// both axes in trigramOrder.
var kingWenMatrix = [8][8]string{
	{"乾为天", "天泽履", "天火同人", "天雷无妄", "天风姤", "天水讼", "天山遁", "天地否"},
	{"泽天夬", "兑为泽", "泽火革", "泽雷随", "泽风大过", "泽水困", "泽山咸", "泽地萃"},
	{"火天大有", "火泽睽", "离为火", "火雷噬嗑", "火风鼎", "火水未济", "火山旅", "火地晋"},
	{"雷天大壮", "雷泽归妹", "雷火丰", "震为雷", "雷风恒", "雷水解", "雷山小过", "雷地豫"},
	{"风天小畜", "风泽中孚", "风火家人", "风雷益", "巽为风", "风水涣", "风山渐", "风地观"},
	{"水天需", "水泽节", "水火既济", "水雷屯", "水风井", "坎为水", "水山蹇", "水地比"},
	{"山天大畜", "山泽损", "山火贲", "山雷颐", "山风蛊", "山水蒙", "艮为山", "山地剥"},
	{"地天泰", "地泽临", "地火明夷", "地雷复", "地风升", "地水师", "地山谦", "坤为地"},
}

// hexagramText carries each hexagram's short name and classic reading.
var hexagramText = map[string]struct{ short, meaning string }{
	"乾为天":  {"乾", "刚健中正，自强不息"},
	"天风姤":  {"姤", "邂逅相遇，阴柔渐长"},
	"天山遁":  {"遁", "隐退避让，保全实力"},
	"天地否":  {"否", "阴阳不交，闭塞不通"},
	"风地观":  {"观", "观察审视，神道设教"},
	"山地剥":  {"剥", "剥落衰败，以静制动"},
	"火地晋":  {"晋", "光明上进，顺畅发展"},
	"火天大有": {"大有", "日丽中天，万物繁盛"},
	"兑为泽":  {"兑", "欢悦和悦，以诚相待"},
	"泽水困":  {"困", "困境受阻，坚守正道"},
	"泽地萃":  {"萃", "聚集汇合，顺应时势"},
	"泽山咸":  {"咸", "感应交流，男女相感"},
	"水山蹇":  {"蹇", "艰难险阻，见险而止"},
	"地山谦":  {"谦", "谦虚谨慎，有终吉祥"},
	"雷山小过": {"小过", "小事过度，谨慎行事"},
	"雷泽归妹": {"归妹", "少女出嫁，不可勉强"},
	"离为火":  {"离", "光明美丽，附着依托"},
	"火山旅":  {"旅", "羁旅在外，谨慎小心"},
	"火风鼎":  {"鼎", "革新变革，稳定发展"},
	"火水未济": {"未济", "事未成就，小心谨慎"},
	"山水蒙":  {"蒙", "启蒙教育，以正养正"},
	"风水涣":  {"涣", "涣散离散，拯救团聚"},
	"天水讼":  {"讼", "争讼纠纷，终凶戒惧"},
	"天火同人": {"同人", "志同道合，和同于人"},
	"震为雷":  {"震", "震动奋起，戒惧修省"},
	"雷地豫":  {"豫", "欢乐豫悦，骄纵灾祸"},
	"雷水解":  {"解", "解除险难，缓和舒解"},
	"雷风恒":  {"恒", "恒久不变，守恒持正"},
	"地风升":  {"升", "上升进步，柔顺谦虚"},
	"水风井":  {"井", "井养不穷，往来无咎"},
	"泽风大过": {"大过", "大为过度，非常行事"},
	"泽雷随":  {"随", "随机应变，和悦相随"},
	"巽为风":  {"巽", "谦逊柔顺，渗透前进"},
	"风天小畜": {"小畜", "小有蓄积，以待时机"},
	"风火家人": {"家人", "家庭家道，利女正固"},
	"风雷益":  {"益", "增益利益，损上益下"},
	"天雷无妄": {"无妄", "真实无妄，顺应自然"},
	"火雷噬嗑": {"噬嗑", "咬合惩治，明罚敕法"},
	"山雷颐":  {"颐", "颐养正道，自求口实"},
	"山风蛊":  {"蛊", "蛊惑振救，整治腐败"},
	"坎为水":  {"坎", "重重险阻，习坎行险"},
	"水泽节":  {"节", "节制调节，适可而止"},
	"水雷屯":  {"屯", "初生艰难，屯难聚积"},
	"水火既济": {"既济", "事已成就，守成谨慎"},
	"泽火革":  {"革", "变革更新，顺天应人"},
	"雷火丰":  {"丰", "丰盛盈满，明以动之"},
	"地火明夷": {"明夷", "光明受损，晦暗艰贞"},
	"地水师":  {"师", "兴师动众，正义之战"},
	"艮为山":  {"艮", "止而不进，知止则吉"},
	"山火贲":  {"贲", "装饰文饰，实质为本"},
	"山天大畜": {"大畜", "大有蓄积，刚健笃实"},
	"山泽损":  {"损", "减损奉献，损下益上"},
	"火泽睽":  {"睽", "乖违背离，同异相成"},
	"天泽履":  {"履", "履道坦坦，素履之往"},
	"风泽中孚": {"中孚", "内心诚信，豚鱼吉祥"},
	"风山渐":  {"渐", "渐进发展，循序前进"},
	"坤为地":  {"坤", "柔顺厚德，载物含弘"},
	"地雷复":  {"复", "一阳来复，回归正道"},
	"地泽临":  {"临", "居高临下，教民保民"},
	"地天泰":  {"泰", "天地交通，通泰安宁"},
	"雷天大壮": {"大壮", "阳盛壮大，非礼弗履"},
	"泽天夬":  {"夬", "决断果敢，刚决柔和"},
	"水天需":  {"需", "等待时机，饮食宴乐"},
	"水地比":  {"比", "亲近辅助，择善而从"},
}

var hexagramTable = make(map[uint8]models.Hexagram, 64)

func init() {
	for ui, upper := range trigramOrder {
		for li, lower := range trigramOrder {
			name := kingWenMatrix[ui][li]
			text := hexagramText[name]
			code := upper<<3 | lower
			hexagramTable[code] = models.Hexagram{
				Code:    code,
				Name:    name,
				Short:   text.short,
				Meaning: text.meaning,
				Upper:   trigrams[upper],
				Lower:   trigrams[lower],
			}
		}
	}
}

// hexagramAt resolves a six-bit line code (bit 0 = bottom line, yang = 1) to
// its hexagram record.
func hexagramAt(code uint8) models.Hexagram {
	return hexagramTable[code&0x3f]
}
