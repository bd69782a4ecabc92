package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Play Icon = iota + 1
	Pause
	Volume
	Muted
	Speed
	Captions
	Settings
	Fullscreen
	Audio
	Video
	Progress
	Success
	Fail
	Mark
)

var icons = map[Icon]*iconDef{
	Play:       {emoji: "▶️", nerd: "", plain: ">", kaomoji: "(>‿◠)", squares: "▶"},
	Pause:      {emoji: "⏸️", nerd: "", plain: "||", kaomoji: "(－_－)", squares: "⏸"},
	Volume:     {emoji: "🔊", nerd: "", plain: "vol", kaomoji: "♪(´ε｀ )", squares: "◧"},
	Muted:      {emoji: "🔇", nerd: "", plain: "mute", kaomoji: "(｡•́︿•̀｡)", squares: "◻"},
	Speed:      {emoji: "⏩", nerd: "", plain: ">>", kaomoji: "ε=ε=┌( >_<)┘", squares: "▸"},
	Captions:   {emoji: "💬", nerd: "", plain: "cc", kaomoji: "(・ω・)ノ", squares: "▤"},
	Settings:   {emoji: "⚙️", nerd: "", plain: "*", kaomoji: "(•̀ᴗ•́)و", squares: "▦"},
	Fullscreen: {emoji: "🖥️", nerd: "", plain: "[ ]", kaomoji: "ヽ(°〇°)ﾉ", squares: "▣"},
	Audio:      {emoji: "🎵", nerd: "", plain: "~", kaomoji: "♪♪ ヽ(ˇ∀ˇ )ゞ", squares: "▥"},
	Video:      {emoji: "🎬", nerd: "", plain: "#", kaomoji: "(☞ﾟヮﾟ)☞", squares: "▩"},
	Progress:   {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・_・ヾ", squares: "◫"},
	Success:    {emoji: "🎉", nerd: "", plain: "+", kaomoji: "(ᵔᴥᵔ)", squares: "▣"},
	Fail:       {emoji: "💀", nerd: "", plain: "x", kaomoji: "(╯°□°）╯︵ ┻━┻", squares: "▨"},
	Mark:       {emoji: "✔️", nerd: "", plain: "*", kaomoji: "(•̀ᴗ•́)", squares: "■"},
}
