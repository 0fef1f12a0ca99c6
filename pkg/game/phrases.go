package game

// BuiltinPhrases 内置的日常短语池（47 条）
// 周期性说话时从这里无重复循环抽取，可被设置中的自定义短语覆盖
var BuiltinPhrases = []string{
	"Boo! ~",
	"I'm friendly!",
	"*floats happily*",
	"Spooky vibes~",
	"Want a hug?",
	"I like you!",
	"*wiggles*",
	"So cozy here~",
	"Hewwo!",
	"*happy ghost noises*",
	"You're doing great!",
	"Take a break?",
	"Stay hydrated!",
	"*peeks at you*",
	"Boop!",
	"I believe in you!",
	"*sparkles*",
	"Keep going!",
	"You got this!",
	"*floats around*",
	"I'm here for the boos!",
	"You're my ghoul friend~",
	"I'm dead tired...",
	"Just passing through!",
	"Life is un-boo-lievable!",
	"I've got spirit!",
	"Don't ghost me!",
	"Creeping it real~",
	"Haunt you later!",
	"If you got it, haunt it!",
	"I'm having a fang-tastic day!",
	"Ghosting is my thing~",
	"You look boo-tiful!",
	"I'm a little ghoul-ish~",
	"Spook-tacular vibes!",
	"The ghoul next door~",
	"I ain't afraid of no work!",
	"Fangs for being here!",
	"Having a wail of a time!",
	"*phases through wall*",
	"Boo-lieve in yourself!",
	"I'm just a lost soul~",
	"Eek-xcuse me!",
	"*rattles chains cutely*",
	"That was eerie-sistible!",
	"Ghouls just wanna have fun!",
	"*phases into the couch*",
}

// BuiltinScarePhrases 内置的惊吓短语池（30 条）
// 惊吓动画淡入时从这里无重复循环抽取
var BuiltinScarePhrases = []string{
	"BOO!!",
	"Did I scare you?",
	"Behind you!!",
	"I see you~",
	"*jumps out*",
	"Peek-a-boo!",
	"Miss me?",
	"Surprise!!",
	"Gotcha!",
	"Still here~",
	"You can't escape me!",
	"I never left...",
	"*appears menacingly*",
	"Thought you lost me?",
	"Guess who!",
	"You looked away...",
	"I was here the whole time",
	"*materializes*",
	"Boo from the beyond!",
	"Can't get rid of me~",
	"The walls have eyes!",
	"*emerges from screen*",
	"Right behind you!",
	"I haunt this desktop now",
	"Feeling a chill?",
	"*phases into reality*",
	"You forgot about me!",
	"Knock knock... BOO!",
	"The ghost is back!",
	"I'm always watching~",
}
